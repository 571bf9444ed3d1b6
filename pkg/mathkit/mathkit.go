// Package mathkit aggregates numeric keys of a sequence.
//
// Aggregating an empty sequence is never an error:
// Sum and Average yield zero, and Summarize yields an empty Stats.
package mathkit

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds up the numeric key of every element.
// The sum of an empty slice is 0.
func Sum[T any, N Number](s []T, key func(T) N) N {
	var sum N
	for _, v := range s {
		sum += key(v)
	}
	return sum
}

// Average returns the arithmetic mean of the numeric key of every element.
// The average of an empty slice is 0.
func Average[T any, N Number](s []T, key func(T) N) float64 {
	if len(s) == 0 {
		return 0
	}
	return float64(Sum(s, key)) / float64(len(s))
}

// Stats is the summary of a numeric sequence.
//
// The zero Stats describes an empty sequence, for which IsEmpty is true.
// Min and Max only carry meaning when the Stats is not empty.
type Stats struct {
	Count int
	Sum   float64
	Min   float64
	Max   float64
}

// Summarize computes Stats over the numeric key of every element in a single pass.
func Summarize[T any, N Number](s []T, key func(T) N) Stats {
	var stats Stats
	for _, v := range s {
		stats = stats.Accept(float64(key(v)))
	}
	return stats
}

// Accept returns a copy of the Stats with the value accounted.
// The first accepted value sets both Min and Max.
func (s Stats) Accept(v float64) Stats {
	if s.Count == 0 {
		return Stats{Count: 1, Sum: v, Min: v, Max: v}
	}
	s.Count++
	s.Sum += v
	s.Min = math.Min(s.Min, v)
	s.Max = math.Max(s.Max, v)
	return s
}

// Combine merges two summaries as if their values were summarised together.
func (s Stats) Combine(oth Stats) Stats {
	switch {
	case oth.IsEmpty():
		return s
	case s.IsEmpty():
		return oth
	}
	return Stats{
		Count: s.Count + oth.Count,
		Sum:   s.Sum + oth.Sum,
		Min:   math.Min(s.Min, oth.Min),
		Max:   math.Max(s.Max, oth.Max),
	}
}

func (s Stats) IsEmpty() bool { return s.Count == 0 }

// Average is 0 when no value was summarised.
func (s Stats) Average() float64 {
	if s.IsEmpty() {
		return 0
	}
	return s.Sum / float64(s.Count)
}

func (s Stats) String() string {
	if s.IsEmpty() {
		return "Stats{count=0}"
	}
	return fmt.Sprintf("Stats{count=%d, sum=%f, min=%f, average=%f, max=%f}",
		s.Count, s.Sum, s.Min, s.Average(), s.Max)
}
