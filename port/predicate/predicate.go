// Package predicate
//
// This package provides composable predicates for filtering pipelines,
// and the Comparable constraint of values with their own ordering.
//
// # Predicates
//
// A predicate is a function that returns a boolean result about a value.
// Func[T] is the first-class form of it, so conditions can be named, reused and
// combined with And, Or and Not instead of being written as one inline boolean expression.
//
//	inBooks := predicate.Func[Product](func(p Product) bool { return p.Category == "Books" })
//	above100 := predicate.Func[Product](func(p Product) bool { return 100 < p.Price })
//	slicekit.Filter(products, inBooks.And(above100))
//
// Comparable describes how values order relative to each other.
package predicate

// Func is a predicate over T.
type Func[T any] func(T) bool

// Test reports whether v satisfies the predicate.
// A nil Func accepts every value.
func (fn Func[T]) Test(v T) bool {
	if fn == nil {
		return true
	}
	return fn(v)
}

// And returns a predicate that is satisfied when both the receiver and oth are satisfied.
// Evaluation short circuits on the first unsatisfied predicate.
func (fn Func[T]) And(oth Func[T]) Func[T] { return And(fn, oth) }

// Or returns a predicate that is satisfied when either the receiver or oth is satisfied.
func (fn Func[T]) Or(oth Func[T]) Func[T] { return Or(fn, oth) }

// Negate returns the logical complement of the receiver.
func (fn Func[T]) Negate() Func[T] { return Not(fn) }

// And combines predicates with logical conjunction.
// And without arguments accepts every value.
func And[T any](ps ...Func[T]) Func[T] {
	return func(v T) bool {
		for _, p := range ps {
			if !p.Test(v) {
				return false
			}
		}
		return true
	}
}

// Or combines predicates with logical disjunction.
// Or without arguments rejects every value.
func Or[T any](ps ...Func[T]) Func[T] {
	return func(v T) bool {
		for _, p := range ps {
			if p.Test(v) {
				return true
			}
		}
		return false
	}
}

func Not[T any](p Func[T]) Func[T] {
	return func(v T) bool { return !p.Test(v) }
}

// Bind turns a two argument predicate into a Func by fixing its second argument.
//
//	categoryIs := func(p Product, category string) bool { return p.Category == category }
//	slicekit.Filter(products, predicate.Bind(categoryIs, "Books"))
func Bind[T, A any](bi func(T, A) bool, arg A) Func[T] {
	return func(v T) bool { return bi(v, arg) }
}

// Comparable defines how comparison can be implemented.
//
// Types implementing this interface must provide a Compare method that defines the ordering of values.
type Comparable[T any] interface {
	// Compare returns:
	//   -1 if receiver is less than the argument,
	//    0 if they're equal, and
	//   +1 if receiver is greater.
	//
	// Implementors must ensure consistent ordering semantics.
	Compare(T) int
}
