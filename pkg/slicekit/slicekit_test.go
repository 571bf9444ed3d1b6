package slicekit_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"go.llib.dev/shopquery/pkg/compare"
	"go.llib.dev/shopquery/pkg/slicekit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

type product struct {
	ID       int
	Category string
	Price    float64
}

var byPrice = compare.By(func(p product) float64 { return p.Price })

func ExampleFilter() {
	var vs = []int{1, 2, 3, 4}
	slicekit.Filter(vs, func(n int) bool { return n%2 == 0 }) // []int{2, 4}
}

func TestFilter(t *testing.T) {
	t.Run("elements are kept in order when they satisfy the predicate", func(t *testing.T) {
		vs := []product{
			{ID: 1, Category: "Books", Price: 120},
			{ID: 2, Category: "Toys", Price: 50},
			{ID: 3, Category: "Books", Price: 80},
		}
		got := slicekit.Filter(vs, func(p product) bool {
			return p.Category == "Books" && 100 < p.Price
		})
		assert.Equal(t, []product{{ID: 1, Category: "Books", Price: 120}}, got)
	})
	t.Run("input is not affected", func(t *testing.T) {
		vs := []int{1, 2, 3}
		_ = slicekit.Filter(vs, func(n int) bool { return n == 2 })
		assert.Equal(t, []int{1, 2, 3}, vs)
	})
	t.Run("nil input yields an empty result", func(t *testing.T) {
		got := slicekit.Filter[int](nil, func(int) bool { return true })
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func ExampleMap() {
	var x = []string{"a", "b", "c"}
	_ = slicekit.Map(x, strings.ToUpper) // []string{"A", "B", "C"}
}

func TestMap(t *testing.T) {
	t.Run("happy", func(t *testing.T) {
		var x = []string{"a", "b", "c"}
		got := slicekit.Map(x, strings.ToUpper)
		assert.Equal(t, []string{"A", "B", "C"}, got)
	})
	t.Run("source values are left untouched", func(t *testing.T) {
		vs := []product{{Category: "Toys", Price: 100}, {Category: "Toys", Price: 200}}
		got := slicekit.Map(vs, func(p product) product {
			p.Price = p.Price * 0.9
			return p
		})
		assert.Equal(t, []product{{Category: "Toys", Price: 90}, {Category: "Toys", Price: 180}}, got)
		assert.Equal(t, []product{{Category: "Toys", Price: 100}, {Category: "Toys", Price: 200}}, vs)
	})
}

func TestMapErr(t *testing.T) {
	t.Run("happy", func(t *testing.T) {
		var x = []string{"1", "2", "3"}
		got, err := slicekit.MapErr(x, strconv.Atoi)
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, got)
	})
	t.Run("rainy", func(t *testing.T) {
		var x = []string{"1", "B", "3"}
		_, err := slicekit.MapErr(x, strconv.Atoi)
		assert.Error(t, err)
	})
}

func TestFlatMap(t *testing.T) {
	type order struct{ Products []product }
	orders := []order{
		{Products: []product{{ID: 1}, {ID: 2}}},
		{Products: nil},
		{Products: []product{{ID: 2}, {ID: 3}}},
	}
	got := slicekit.FlatMap(orders, func(o order) []product { return o.Products })
	assert.Equal(t, []product{{ID: 1}, {ID: 2}, {ID: 2}, {ID: 3}}, got)
}

func TestDistinct(t *testing.T) {
	s := testcase.NewSpec(t)

	values := testcase.Let(s, func(t *testcase.T) []int {
		return random.Slice(t.Random.IntBetween(0, 50), func() int {
			return t.Random.IntBetween(0, 10)
		})
	})

	s.Test("first seen order is preserved", func(t *testcase.T) {
		assert.Equal(t, []int{3, 1, 2}, slicekit.Distinct([]int{3, 1, 3, 2, 1}))
	})

	s.Test("idempotent", func(t *testcase.T) {
		once := slicekit.Distinct(values.Get(t))
		assert.Equal(t, once, slicekit.Distinct(once))
	})

	s.Test("no duplicates remain", func(t *testcase.T) {
		seen := map[int]struct{}{}
		for _, v := range slicekit.Distinct(values.Get(t)) {
			_, ok := seen[v]
			assert.False(t, ok, assert.MessageF("%d is duplicated", v))
			seen[v] = struct{}{}
		}
	})

	s.Test("equal struct values collapse", func(t *testcase.T) {
		p := product{ID: 1, Category: "Baby", Price: 41.46}
		assert.Equal(t, []product{p}, slicekit.Distinct([]product{p, p}))
	})
}

func TestDistinctBy(t *testing.T) {
	vs := []product{{ID: 1, Price: 1}, {ID: 1, Price: 2}, {ID: 2}}
	got := slicekit.DistinctBy(vs, func(p product) int { return p.ID })
	assert.Equal(t, []product{{ID: 1, Price: 1}, {ID: 2}}, got)
}

func TestSortBy(t *testing.T) {
	t.Run("ascending", func(t *testing.T) {
		vs := []product{{ID: 1, Price: 30}, {ID: 2, Price: 10}, {ID: 3, Price: 20}}
		got := slicekit.SortBy(vs, byPrice)
		assert.Equal(t, []product{{ID: 2, Price: 10}, {ID: 3, Price: 20}, {ID: 1, Price: 30}}, got)
		assert.Equal(t, 1, vs[0].ID, "input order is untouched")
	})
	t.Run("descending keeps ties in original order", func(t *testing.T) {
		vs := []product{{ID: 1, Price: 10}, {ID: 2, Price: 30}, {ID: 3, Price: 10}, {ID: 4, Price: 30}}
		got := slicekit.SortBy(vs, byPrice.Reverse())
		assert.Equal(t, []int{2, 4, 1, 3}, slicekit.Map(got, func(p product) int { return p.ID }))
	})
}

func TestTake(t *testing.T) {
	s := testcase.NewSpec(t)

	values := testcase.Let(s, func(t *testcase.T) []product {
		var id int
		return random.Slice(t.Random.IntBetween(0, 20), func() product {
			id++
			return product{ID: id, Price: float64(t.Random.IntBetween(0, 5))}
		})
	})
	n := testcase.Let(s, func(t *testcase.T) int {
		return t.Random.IntBetween(0, 25)
	})

	s.Test("take of a descending sort yields the n largest elements in descending order", func(t *testcase.T) {
		vs := values.Get(t)
		got := slicekit.Take(slicekit.SortBy(vs, byPrice.Reverse()), n.Get(t))

		expLen := n.Get(t)
		if len(vs) < expLen {
			expLen = len(vs)
		}
		assert.Equal(t, expLen, len(got))

		for i := 1; i < len(got); i++ {
			assert.True(t, got[i].Price <= got[i-1].Price)
			if got[i].Price == got[i-1].Price {
				assert.True(t, got[i-1].ID < got[i].ID, "ties keep their original order")
			}
		}
		if 0 < len(got) {
			last := got[len(got)-1]
			rest := slicekit.Filter(vs, func(p product) bool {
				return !slicekit.AnyMatch(got, func(g product) bool { return g.ID == p.ID })
			})
			for _, r := range rest {
				assert.True(t, r.Price <= last.Price)
			}
		}
	})

	s.Test("zero or negative n yields an empty result", func(t *testcase.T) {
		assert.Empty(t, slicekit.Take(values.Get(t), -1*t.Random.IntBetween(0, 10)))
	})
}

func TestReduce(t *testing.T) {
	t.Run("without elements there is no result", func(t *testing.T) {
		_, ok := slicekit.Reduce([]float64{}, func(a, b float64) float64 { return a + b })
		assert.False(t, ok)
	})
	t.Run("elements are combined from left to right", func(t *testing.T) {
		got, ok := slicekit.Reduce([]string{"a", "b", "c"}, func(a, b string) string { return a + b })
		assert.True(t, ok)
		assert.Equal(t, "abc", got)
	})
}

func ExampleFold() {
	var x = []string{"a", "b", "c"}
	got := slicekit.Fold(x, "|", func(o string, i string) string {
		return o + i
	})
	fmt.Println(got) // "|abc"
}

func TestFold(t *testing.T) {
	t.Run("empty slice yields the identity", func(t *testing.T) {
		assert.Equal(t, 0.0, slicekit.Fold([]float64{}, 0.0, func(a, b float64) float64 { return a + b }))
	})
	t.Run("happy", func(t *testing.T) {
		got := slicekit.Fold([]string{"1", "2", "3"}, 42, func(o int, i string) int {
			n, _ := strconv.Atoi(i)
			return o + n
		})
		assert.Equal(t, 42+1+2+3, got)
	})
}

func TestMaxBy(t *testing.T) {
	s := testcase.NewSpec(t)

	values := testcase.Let(s, func(t *testcase.T) []product {
		return random.Slice(t.Random.IntBetween(1, 30), func() product {
			return product{ID: t.Random.Int(), Price: float64(t.Random.IntBetween(0, 10))}
		})
	})

	s.Test("empty input has no maximum", func(t *testcase.T) {
		_, ok := slicekit.MaxBy([]product(nil), byPrice)
		assert.False(t, ok)
	})

	s.Test("maximum key is greater than or equal to every other key", func(t *testcase.T) {
		got, ok := slicekit.MaxBy(values.Get(t), byPrice)
		assert.True(t, ok)
		for _, v := range values.Get(t) {
			assert.True(t, v.Price <= got.Price)
		}
	})

	s.Test("on ties the first maximal element wins", func(t *testcase.T) {
		vs := []product{{ID: 1, Price: 5}, {ID: 2, Price: 9}, {ID: 3, Price: 9}}
		got, ok := slicekit.MaxBy(vs, byPrice)
		assert.True(t, ok)
		assert.Equal(t, 2, got.ID)
	})
}

func TestMinBy(t *testing.T) {
	vs := []product{{ID: 1, Price: 5}, {ID: 2, Price: 1}, {ID: 3, Price: 1}}
	got, ok := slicekit.MinBy(vs, byPrice)
	assert.True(t, ok)
	assert.Equal(t, 2, got.ID)

	_, ok = slicekit.MinBy([]product{}, byPrice)
	assert.False(t, ok)
}

func TestMatch(t *testing.T) {
	isBaby := func(p product) bool { return p.Category == "Baby" }
	vs := []product{{Category: "Toys"}, {Category: "Baby"}}

	assert.True(t, slicekit.AnyMatch(vs, isBaby))
	assert.False(t, slicekit.AnyMatch(vs[:1], isBaby))
	assert.False(t, slicekit.AnyMatch([]product{}, isBaby))

	got, ok := slicekit.First(vs, isBaby)
	assert.True(t, ok)
	assert.Equal(t, product{Category: "Baby"}, got)
}
