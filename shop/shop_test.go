package shop_test

import (
	"testing"
	"time"

	"go.llib.dev/shopquery/pkg/slicekit"
	"go.llib.dev/shopquery/port/predicate"
	"go.llib.dev/shopquery/shop"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

var (
	book  = shop.Product{ID: 1, Name: "Go in Action", Category: "Books", Price: 120}
	cheap = shop.Product{ID: 2, Name: "Pamphlet", Category: "Books", Price: 10}
	toy   = shop.Product{ID: 3, Name: "Yo-yo", Category: "Toys", Price: 15}
	baby  = shop.Product{ID: 4, Name: "Rattle", Category: "Baby", Price: 30}
)

func ExampleProduct_Discount() {
	p := shop.Product{Name: "Go in Action", Category: "Books", Price: 100}
	_ = p.Discount(0.1).Price // 90
}

func TestProduct(t *testing.T) {
	s := testcase.NewSpec(t)

	product := testcase.Let(s, func(t *testcase.T) shop.Product {
		return shop.Product{
			ID:       int64(t.Random.IntBetween(1, 1000)),
			Name:     t.Random.String(),
			Category: t.Random.String(),
			Price:    float64(t.Random.IntBetween(1, 1000)),
		}
	})

	s.Test("WithPrice returns a copy", func(t *testcase.T) {
		original := product.Get(t)
		got := original.WithPrice(42)
		assert.Equal(t, 42.0, got.Price)
		assert.Equal(t, product.Get(t), original)
		assert.Equal(t, original.ID, got.ID)
		assert.Equal(t, original.Name, got.Name)
	})

	s.Test("Discount reduces the price by the rate", func(t *testcase.T) {
		p := product.Get(t).WithPrice(200)
		assert.Equal(t, 180.0, p.Discount(0.1).Price)
		assert.Equal(t, 200.0, p.Discount(0).Price)
		assert.Equal(t, 200.0, p.Price)
	})

	s.Test("equality is value equality", func(t *testcase.T) {
		p := product.Get(t)
		cpy := p
		assert.True(t, p == cpy)
		assert.False(t, p == p.WithPrice(p.Price+1))
	})
}

func TestOrder_TotalPrice(t *testing.T) {
	o := shop.Order{ID: 1, Products: []shop.Product{book, toy, baby}}
	assert.Equal(t, 165.0, o.TotalPrice())
	assert.Equal(t, 0.0, shop.Order{}.TotalPrice())
}

func TestProductPredicates(t *testing.T) {
	products := []shop.Product{book, cheap, toy, baby}

	t.Run("InCategory is case sensitive", func(t *testing.T) {
		assert.Equal(t, []shop.Product{book, cheap}, slicekit.Filter(products, shop.InCategory("Books")))
		assert.Empty(t, slicekit.Filter(products, shop.InCategory("books")))
	})
	t.Run("InCategoryFold ignores case", func(t *testing.T) {
		assert.Equal(t, []shop.Product{book, cheap}, slicekit.Filter(products, shop.InCategoryFold("bOOks")))
	})
	t.Run("PriceAbove is exclusive", func(t *testing.T) {
		assert.Equal(t, []shop.Product{book, baby}, slicekit.Filter(products, shop.PriceAbove(15)))
	})
	t.Run("bound bi-predicate", func(t *testing.T) {
		assert.Equal(t, []shop.Product{toy}, slicekit.Filter(products, predicate.Bind(shop.IsInCategory, "toys")))
	})
	t.Run("combined", func(t *testing.T) {
		got := slicekit.Filter(products, shop.InCategoryFold("books").And(shop.PriceAbove(100)))
		assert.Equal(t, []shop.Product{book}, got)
	})
	t.Run("ByPrice", func(t *testing.T) {
		assert.Equal(t, []shop.Product{cheap, toy, baby, book}, slicekit.SortBy(products, shop.ByPrice))
	})
}

func TestOrderPredicates(t *testing.T) {
	var (
		gold   = shop.Customer{ID: 1, Name: "Ann", Tier: 2}
		silver = shop.Customer{ID: 2, Name: "Bob", Tier: 1}
	)
	var (
		o1 = shop.Order{ID: 1, OrderDate: shop.NewDate(2021, time.February, 1), Customer: gold, Products: []shop.Product{book}}
		o2 = shop.Order{ID: 2, OrderDate: shop.NewDate(2021, time.March, 14), Customer: silver, Products: []shop.Product{baby, toy}}
		o3 = shop.Order{ID: 3, OrderDate: shop.NewDate(2021, time.April, 1), Customer: gold, Products: []shop.Product{toy}}
	)
	orders := []shop.Order{o1, o2, o3}
	ids := func(os []shop.Order) []int64 { return slicekit.Map(os, shop.Order.GetID) }

	t.Run("HasProduct", func(t *testing.T) {
		assert.Equal(t, []int64{2}, ids(slicekit.Filter(orders, shop.HasProduct(shop.InCategory("Baby")))))
	})
	t.Run("CustomerTier", func(t *testing.T) {
		assert.Equal(t, []int64{1, 3}, ids(slicekit.Filter(orders, shop.CustomerTier(2))))
	})
	t.Run("OrderedBetween is inclusive", func(t *testing.T) {
		got := slicekit.Filter(orders, shop.OrderedBetween(shop.NewDate(2021, time.February, 1), shop.NewDate(2021, time.April, 1)))
		assert.Equal(t, []int64{1, 2, 3}, ids(got))
		got = slicekit.Filter(orders, shop.OrderedBetween(shop.NewDate(2021, time.February, 2), shop.NewDate(2021, time.March, 31)))
		assert.Equal(t, []int64{2}, ids(got))
	})
	t.Run("OrderedOn", func(t *testing.T) {
		assert.Equal(t, []int64{2}, ids(slicekit.Filter(orders, shop.OrderedOn(shop.MustParseDate("2021-03-14")))))
	})
	t.Run("OrderedInMonth", func(t *testing.T) {
		assert.Equal(t, []int64{3}, ids(slicekit.Filter(orders, shop.OrderedInMonth(2021, time.April))))
		assert.Empty(t, slicekit.Filter(orders, shop.OrderedInMonth(2020, time.April)))
	})
	t.Run("ByOrderDate", func(t *testing.T) {
		assert.Equal(t, []int64{3, 2, 1}, ids(slicekit.SortBy(orders, shop.ByOrderDate.Reverse())))
	})
}
