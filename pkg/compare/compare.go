// Package compare builds comparators for ordering values in sort and max-by pipelines.
package compare

import (
	"cmp"
	"strings"

	"go.llib.dev/shopquery/port/predicate"
)

// Func compares a and b and returns:
//   - a negative number if a < b;
//   - zero if a == b;
//   - a positive number if a > b.
type Func[T any] func(a, b T) int

// Reverse returns a comparator with the opposite ordering.
func (fn Func[T]) Reverse() Func[T] {
	return func(a, b T) int { return fn(b, a) }
}

// Then returns a comparator that falls back to next when the receiver reports equality.
func (fn Func[T]) Then(next Func[T]) Func[T] {
	return func(a, b T) int {
		if c := fn(a, b); c != 0 {
			return c
		}
		return next(a, b)
	}
}

// By orders values by an ordered key derived from them.
//
//	compare.By(func(p Product) float64 { return p.Price })
func By[T any, K cmp.Ordered](key func(T) K) Func[T] {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// ByComparable orders values by a key that knows how to compare itself.
func ByComparable[T any, K predicate.Comparable[K]](key func(T) K) Func[T] {
	return func(a, b T) int { return key(a).Compare(key(b)) }
}

// Natural is the natural ordering of an ordered type.
func Natural[T cmp.Ordered]() Func[T] { return cmp.Compare[T] }

// FoldStrings compares strings under Unicode case-folding.
func FoldStrings[S ~string](a, b S) int {
	return strings.Compare(strings.ToLower(string(a)), strings.ToLower(string(b)))
}
