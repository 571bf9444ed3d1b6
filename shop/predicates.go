package shop

import (
	"strings"
	"time"

	"go.llib.dev/shopquery/pkg/compare"
	"go.llib.dev/shopquery/pkg/slicekit"
	"go.llib.dev/shopquery/port/predicate"
)

func InCategory(category string) predicate.Func[Product] {
	return func(p Product) bool { return p.Category == category }
}

// InCategoryFold matches the category case-insensitively, so "books" matches "Books".
func InCategoryFold(category string) predicate.Func[Product] {
	return func(p Product) bool { return strings.EqualFold(p.Category, category) }
}

// PriceAbove matches products strictly more expensive than the limit.
func PriceAbove(limit float64) predicate.Func[Product] {
	return func(p Product) bool { return limit < p.Price }
}

// IsInCategory is the two argument form of InCategoryFold, meant for predicate.Bind.
func IsInCategory(p Product, category string) bool {
	return strings.EqualFold(p.Category, category)
}

func HasProduct(pred predicate.Func[Product]) predicate.Func[Order] {
	return func(o Order) bool { return slicekit.AnyMatch(o.Products, pred) }
}

func CustomerTier(tier int) predicate.Func[Order] {
	return func(o Order) bool { return o.Customer.Tier == tier }
}

// OrderedBetween matches orders placed within the inclusive [from, to] date range.
func OrderedBetween(from, to Date) predicate.Func[Order] {
	return func(o Order) bool { return o.OrderDate.Between(from, to) }
}

func OrderedOn(date Date) predicate.Func[Order] {
	return func(o Order) bool { return o.OrderDate.Equal(date) }
}

func OrderedInMonth(year int, month time.Month) predicate.Func[Order] {
	return func(o Order) bool {
		return o.OrderDate.Year == year && o.OrderDate.Month == month
	}
}

var (
	ByPrice     = compare.By(Product.GetPrice)
	ByOrderDate = compare.ByComparable(Order.GetOrderDate)
)
