// Package slicekit provides the sequence operations of a query pipeline over in-memory slices.
//
// Every function is pure: the input slice is never modified,
// and the result is always a freshly allocated slice or a scalar.
// A nil input slice is handled as an empty sequence.
package slicekit

import (
	"slices"

	"go.llib.dev/shopquery/pkg/datastruct"
)

// Filter keeps the elements that satisfy the predicate, in their original order.
func Filter[T any](s []T, pred func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// Map will do a mapping from an input type into an output type.
func Map[O, I any](s []I, fn func(I) O) []O {
	out := make([]O, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// MapErr is like Map, but it stops at the first mapping error.
func MapErr[O, I any](s []I, fn func(I) (O, error)) ([]O, error) {
	out := make([]O, 0, len(s))
	for _, v := range s {
		o, err := fn(v)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// FlatMap expands every element into zero or more elements and flattens the result.
//
//	slicekit.FlatMap(orders, func(o Order) []Product { return o.Products })
func FlatMap[O, I any](s []I, fn func(I) []O) []O {
	var out = make([]O, 0, len(s))
	for _, v := range s {
		out = append(out, fn(v)...)
	}
	return out
}

// Distinct removes value-duplicates and keeps the first occurrence of each value.
func Distinct[T comparable](s []T) []T {
	var set datastruct.OrderedSet[T]
	set.Append(s...)
	return set.ToSlice()
}

// DistinctBy removes elements whose key was already seen, and keeps the first occurrence.
func DistinctBy[T any, K comparable](s []T, key func(T) K) []T {
	var (
		out  = make([]T, 0, len(s))
		seen = make(map[K]struct{}, len(s))
	)
	for _, v := range s {
		k := key(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

// SortBy returns a sorted copy of the slice.
// The sort is stable, elements that compare equal keep their original relative order.
func SortBy[T any](s []T, cmp func(a, b T) int) []T {
	out := make([]T, len(s))
	copy(out, s)
	slices.SortStableFunc(out, cmp)
	return out
}

// Take returns the first n elements.
// When n exceeds the length of the slice, all elements are returned.
func Take[T any](s []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if len(s) < n {
		n = len(s)
	}
	out := make([]T, n)
	copy(out, s)
	return out
}

// Reduce combines the elements from left to right.
// Reduce has no identity value, so an empty slice yields false.
func Reduce[T any](s []T, fn func(T, T) T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	result := s[0]
	for _, v := range s[1:] {
		result = fn(result, v)
	}
	return result, true
}

// Fold iterates over a slice, combining elements into the initial value using the reducer function.
// An empty slice yields the initial value.
func Fold[O, I any](s []I, initial O, fn func(O, I) O) O {
	var result = initial
	for _, v := range s {
		result = fn(result, v)
	}
	return result
}

// MaxBy returns the greatest element according to cmp.
// When multiple elements are equally greatest, the first of them is returned.
// An empty slice yields false.
func MaxBy[T any](s []T, cmp func(a, b T) int) (T, bool) {
	return pickBy(s, func(cur, candidate T) bool { return cmp(cur, candidate) < 0 })
}

// MinBy returns the least element according to cmp.
// When multiple elements are equally least, the first of them is returned.
// An empty slice yields false.
func MinBy[T any](s []T, cmp func(a, b T) int) (T, bool) {
	return pickBy(s, func(cur, candidate T) bool { return 0 < cmp(cur, candidate) })
}

func pickBy[T any](s []T, replace func(cur, candidate T) bool) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	cur := s[0]
	for _, v := range s[1:] {
		if replace(cur, v) {
			cur = v
		}
	}
	return cur, true
}

// AnyMatch reports whether at least one element satisfies the predicate.
func AnyMatch[T any](s []T, pred func(T) bool) bool {
	return slices.ContainsFunc(s, pred)
}

// First returns the first element satisfying the predicate.
func First[T any](s []T, pred func(T) bool) (T, bool) {
	if i := slices.IndexFunc(s, pred); 0 <= i {
		return s[i], true
	}
	var zero T
	return zero, false
}
