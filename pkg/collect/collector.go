package collect

import (
	"go.llib.dev/shopquery/pkg/mathkit"
	"go.llib.dev/shopquery/pkg/slicekit"
)

// Collector reduces a group of elements into a single result.
type Collector[T, R any] func(group []T) R

// ToSlice keeps the group as it is.
func ToSlice[T any]() Collector[T, []T] {
	return func(group []T) []T { return group }
}

// Mapping maps every element of the group before passing them to the downstream collector.
//
//	collect.Mapping(Product.GetName, collect.ToSlice[string]())
func Mapping[T, U, R any](fn func(T) U, downstream Collector[U, R]) Collector[T, R] {
	return func(group []T) R {
		return downstream(slicekit.Map(group, fn))
	}
}

// MaxBy picks the greatest element of the group, the first one on ties.
// The zero T is returned for an empty group, which GroupByWith never produces.
func MaxBy[T any](cmp func(a, b T) int) Collector[T, T] {
	return func(group []T) T {
		v, _ := slicekit.MaxBy(group, cmp)
		return v
	}
}

// MinBy picks the least element of the group, the first one on ties.
func MinBy[T any](cmp func(a, b T) int) Collector[T, T] {
	return func(group []T) T {
		v, _ := slicekit.MinBy(group, cmp)
		return v
	}
}

// AndThen applies a finishing transformation to the result of a collector.
//
//	collect.AndThen(collect.MaxBy(byPrice), Product.GetName)
func AndThen[T, R, O any](c Collector[T, R], finisher func(R) O) Collector[T, O] {
	return func(group []T) O { return finisher(c(group)) }
}

func Counting[T any]() Collector[T, int] {
	return func(group []T) int { return len(group) }
}

func Summing[T any, N mathkit.Number](key func(T) N) Collector[T, N] {
	return func(group []T) N { return mathkit.Sum(group, key) }
}

func Averaging[T any, N mathkit.Number](key func(T) N) Collector[T, float64] {
	return func(group []T) float64 { return mathkit.Average(group, key) }
}

func Summarizing[T any, N mathkit.Number](key func(T) N) Collector[T, mathkit.Stats] {
	return func(group []T) mathkit.Stats { return mathkit.Summarize(group, key) }
}
