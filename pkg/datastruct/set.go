package datastruct

import "iter"

// OrderedSet keeps unique values in the order they were first appended.
type OrderedSet[T comparable] struct {
	index map[T]struct{}
	vs    []T
}

var _ List[any] = (*OrderedSet[any])(nil)

func (s *OrderedSet[T]) Append(vs ...T) {
	for _, v := range vs {
		s.add(v)
	}
}

func (s *OrderedSet[T]) add(v T) {
	if s.index == nil {
		s.index = make(map[T]struct{})
	}
	if _, ok := s.index[v]; ok {
		return
	}
	s.index[v] = struct{}{}
	s.vs = append(s.vs, v)
}

func (s OrderedSet[T]) Has(v T) bool {
	if s.index == nil {
		return false
	}
	_, ok := s.index[v]
	return ok
}

func (set OrderedSet[T]) FromSlice(vs []T) OrderedSet[T] {
	set.Append(vs...)
	return set
}

func (s OrderedSet[T]) ToSlice() []T {
	out := make([]T, len(s.vs))
	copy(out, s.vs)
	return out
}

func (s OrderedSet[T]) Len() int {
	return len(s.vs)
}

func (s OrderedSet[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.vs {
			if !yield(v) {
				return
			}
		}
	}
}
