package datastruct

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

type Map[K comparable, V any] map[K]V

var _ KVS[any, any] = (Map[any, any])(nil)

func (m Map[K, V]) Lookup(key K) (V, bool) {
	val, ok := m[key]
	return val, ok
}

func (m Map[K, V]) Get(key K) V {
	return m[key]
}

func (m Map[K, V]) Set(key K, val V) { m[key] = val }

func (m Map[K, V]) Delete(key K) { delete(m, key) }

func (m Map[K, V]) Len() int { return len(m) }

func (m Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func (m Map[K, V]) ToMap() map[K]V {
	return m
}

func (m Map[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m {
			if !yield(k, v) {
				return
			}
		}
	}
}

// OrderedMap is a KVS that remembers the order in which its keys were first set.
// Keys, Values and Iter all follow that insertion order.
// Overwriting the value of an existing key keeps its original position.
//
// The zero value is an empty map ready to use.
type OrderedMap[K comparable, V any] struct {
	keys []K
	vals map[K]V
}

var _ KVS[any, any] = (*OrderedMap[any, any])(nil)

func (m *OrderedMap[K, V]) Lookup(key K) (V, bool) {
	val, ok := m.vals[key]
	return val, ok
}

func (m *OrderedMap[K, V]) Get(key K) V {
	return m.vals[key]
}

func (m *OrderedMap[K, V]) Set(key K, val V) {
	if m.vals == nil {
		m.vals = make(map[K]V)
	}
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = val
}

func (m *OrderedMap[K, V]) Delete(key K) {
	if _, ok := m.vals[key]; !ok {
		return
	}
	delete(m.vals, key)
	m.keys = slices.DeleteFunc(m.keys, func(k K) bool { return k == key })
}

func (m *OrderedMap[K, V]) Len() int { return len(m.keys) }

func (m *OrderedMap[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

func (m *OrderedMap[K, V]) Values() []V {
	vs := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		vs = append(vs, m.vals[k])
	}
	return vs
}

// ToMap returns a copy of the content as a builtin map, which loses the ordering.
func (m *OrderedMap[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(m.keys))
	for k, v := range m.vals {
		out[k] = v
	}
	return out
}

func (m *OrderedMap[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.vals[k]) {
				return
			}
		}
	}
}

func (m *OrderedMap[K, V]) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, k := range m.keys {
		if 0 < i {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v=%v", k, m.vals[k])
	}
	b.WriteString("}")
	return b.String()
}
