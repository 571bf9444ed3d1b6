// Package collect gathers a sequence into keyed containers.
//
// GroupBy partitions a slice by a derived key,
// GroupByWith additionally reduces every group with a downstream Collector,
// and ToMap indexes a slice by a unique key.
//
// Every result is a *datastruct.OrderedMap,
// where keys are ordered by their first appearance in the source slice,
// and the values of a group keep the relative order of the source.
package collect

import (
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/shopquery/pkg/datastruct"
)

const ErrDuplicateKey errorkit.Error = "ErrDuplicateKey"

// GroupBy partitions the slice by the key of each element.
// Every element ends up in exactly one group, and no group is empty.
func GroupBy[T any, K comparable](s []T, key func(T) K) *datastruct.OrderedMap[K, []T] {
	groups := &datastruct.OrderedMap[K, []T]{}
	for _, v := range s {
		k := key(v)
		groups.Set(k, append(groups.Get(k), v))
	}
	return groups
}

// GroupByWith partitions the slice by key, then reduces each group with the downstream collector.
//
//	collect.GroupByWith(products, Product.GetCategory, collect.MaxBy(byPrice))
func GroupByWith[T any, K comparable, R any](s []T, key func(T) K, downstream Collector[T, R]) *datastruct.OrderedMap[K, R] {
	out := &datastruct.OrderedMap[K, R]{}
	for k, group := range GroupBy(s, key).Iter() {
		out.Set(k, downstream(group))
	}
	return out
}

// PartitionBy splits the slice into the elements that satisfy the predicate and the rest.
func PartitionBy[T any](s []T, pred func(T) bool) (matching, rest []T) {
	matching, rest = []T{}, []T{}
	for _, v := range s {
		if pred(v) {
			matching = append(matching, v)
		} else {
			rest = append(rest, v)
		}
	}
	return matching, rest
}

// ToMap indexes the slice by key, mapping each element to a value.
// When two elements produce the same key, ToMap fails with ErrDuplicateKey.
func ToMap[T any, K comparable, V any](s []T, key func(T) K, value func(T) V) (*datastruct.OrderedMap[K, V], error) {
	out := &datastruct.OrderedMap[K, V]{}
	for _, v := range s {
		k := key(v)
		if _, ok := out.Lookup(k); ok {
			return nil, ErrDuplicateKey.F("key: %v", k)
		}
		out.Set(k, value(v))
	}
	return out, nil
}

// ToMapMerge is like ToMap, but key collisions are resolved with the merge function,
// which receives the value already present and the new value.
func ToMapMerge[T any, K comparable, V any](s []T, key func(T) K, value func(T) V, merge func(current, next V) V) *datastruct.OrderedMap[K, V] {
	out := &datastruct.OrderedMap[K, V]{}
	for _, v := range s {
		k := key(v)
		if cur, ok := out.Lookup(k); ok {
			out.Set(k, merge(cur, value(v)))
			continue
		}
		out.Set(k, value(v))
	}
	return out
}
