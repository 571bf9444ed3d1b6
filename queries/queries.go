package queries

import (
	"context"
	"io"
	"time"

	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/shopquery/pkg/collect"
	"go.llib.dev/shopquery/pkg/datastruct"
	"go.llib.dev/shopquery/pkg/mathkit"
	"go.llib.dev/shopquery/pkg/slicekit"
	"go.llib.dev/shopquery/shop"
)

type Service struct {
	DataSource shop.DataSource
	// Logger [optional] receives the result of every query at debug level.
	Logger *logging.Logger
}

// ProductsInCategoryAbove lists the products of a category, matched case-insensitively,
// that cost strictly more than the price limit.
func (s Service) ProductsInCategoryAbove(ctx context.Context, category string, price float64) ([]shop.Product, error) {
	products, err := s.DataSource.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	result := slicekit.Filter(products, shop.InCategoryFold(category).And(shop.PriceAbove(price)))
	s.logResult(ctx, "ProductsInCategoryAbove", result)
	return result, nil
}

// OrdersWithProductCategory lists the orders having at least one product in the category.
func (s Service) OrdersWithProductCategory(ctx context.Context, category string) ([]shop.Order, error) {
	orders, err := s.DataSource.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	result := slicekit.Filter(orders, shop.HasProduct(shop.InCategory(category)))
	s.logResult(ctx, "OrdersWithProductCategory", orderIDs(result))
	return result, nil
}

// DiscountedProducts returns discounted copies of the products in the category.
// The stored products keep their price.
func (s Service) DiscountedProducts(ctx context.Context, category string, rate float64) ([]shop.Product, error) {
	products, err := s.DataSource.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	result := slicekit.Map(slicekit.Filter(products, shop.InCategory(category)),
		func(p shop.Product) shop.Product { return p.Discount(rate) })
	s.logResult(ctx, "DiscountedProducts", result)
	return result, nil
}

// ProductsOrderedByTierBetween lists the distinct products ordered by customers of the given tier
// within the inclusive date range.
func (s Service) ProductsOrderedByTierBetween(ctx context.Context, tier int, from, to shop.Date) ([]shop.Product, error) {
	orders, err := s.DataSource.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	matching := slicekit.Filter(orders, shop.CustomerTier(tier).And(shop.OrderedBetween(from, to)))
	result := slicekit.Distinct(slicekit.FlatMap(matching, shop.Order.GetProducts))
	s.logResult(ctx, "ProductsOrderedByTierBetween", result)
	return result, nil
}

// CheapestProducts returns the n cheapest products of the category, cheapest first.
func (s Service) CheapestProducts(ctx context.Context, category string, n int) ([]shop.Product, error) {
	products, err := s.DataSource.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	result := slicekit.Take(slicekit.SortBy(slicekit.Filter(products, shop.InCategory(category)), shop.ByPrice), n)
	s.logResult(ctx, "CheapestProducts", result)
	return result, nil
}

// MostRecentOrders returns the n most recently placed orders, latest first.
// Orders placed on the same day keep their listing order.
func (s Service) MostRecentOrders(ctx context.Context, n int) ([]shop.Order, error) {
	orders, err := s.DataSource.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	result := slicekit.Take(slicekit.SortBy(orders, shop.ByOrderDate.Reverse()), n)
	s.logResult(ctx, "MostRecentOrders", orderIDs(result))
	return result, nil
}

func (s Service) ProductsOrderedOn(ctx context.Context, date shop.Date) ([]shop.Product, error) {
	orders, err := s.DataSource.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	result := slicekit.Distinct(slicekit.FlatMap(slicekit.Filter(orders, shop.OrderedOn(date)), shop.Order.GetProducts))
	s.logResult(ctx, "ProductsOrderedOn", result)
	return result, nil
}

// TotalLumpSum sums the price of every product of the orders placed in the given month.
// A product ordered multiple times is counted every time.
func (s Service) TotalLumpSum(ctx context.Context, year int, month time.Month) (float64, error) {
	products, err := s.productsOrderedIn(ctx, year, month)
	if err != nil {
		return 0, err
	}
	result := mathkit.Sum(products, shop.Product.GetPrice)
	s.logResult(ctx, "TotalLumpSum", result)
	return result, nil
}

// TotalLumpReduce is TotalLumpSum expressed as a reduction without an identity element.
func (s Service) TotalLumpReduce(ctx context.Context, year int, month time.Month) (float64, error) {
	products, err := s.productsOrderedIn(ctx, year, month)
	if err != nil {
		return 0, err
	}
	result, ok := slicekit.Reduce(slicekit.Map(products, shop.Product.GetPrice),
		func(a, b float64) float64 { return a + b })
	if !ok {
		result = 0
	}
	s.logResult(ctx, "TotalLumpReduce", result)
	return result, nil
}

func (s Service) productsOrderedIn(ctx context.Context, year int, month time.Month) ([]shop.Product, error) {
	orders, err := s.DataSource.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return slicekit.FlatMap(slicekit.Filter(orders, shop.OrderedInMonth(year, month)), shop.Order.GetProducts), nil
}

// AveragePaidOn averages the price of the products ordered on the given day.
// Without orders on that day, the average is zero.
func (s Service) AveragePaidOn(ctx context.Context, date shop.Date) (float64, error) {
	orders, err := s.DataSource.ListOrders(ctx)
	if err != nil {
		return 0, err
	}
	products := slicekit.FlatMap(slicekit.Filter(orders, shop.OrderedOn(date)), shop.Order.GetProducts)
	result := mathkit.Average(products, shop.Product.GetPrice)
	s.logResult(ctx, "AveragePaidOn", result)
	return result, nil
}

// CategoryStatistics summarises the prices of the products in the category.
func (s Service) CategoryStatistics(ctx context.Context, category string) (mathkit.Stats, error) {
	products, err := s.DataSource.ListProducts(ctx)
	if err != nil {
		return mathkit.Stats{}, err
	}
	result := mathkit.Summarize(slicekit.Filter(products, shop.InCategory(category)), shop.Product.GetPrice)
	s.logResult(ctx, "CategoryStatistics", result)
	return result, nil
}

// ProductCountByOrder maps every order id to the number of products in the order.
func (s Service) ProductCountByOrder(ctx context.Context) (*datastruct.OrderedMap[int64, int], error) {
	orders, err := s.DataSource.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	result, err := collect.ToMap(orders, shop.Order.GetID, func(o shop.Order) int { return len(o.Products) })
	if err != nil {
		return nil, err
	}
	s.logResult(ctx, "ProductCountByOrder", result.String())
	return result, nil
}

// OrdersByCustomer groups the orders by the customer who placed them.
func (s Service) OrdersByCustomer(ctx context.Context) (*datastruct.OrderedMap[shop.Customer, []shop.Order], error) {
	orders, err := s.DataSource.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	result := collect.GroupBy(orders, shop.Order.GetCustomer)
	s.logResult(ctx, "OrdersByCustomer", result.Len())
	return result, nil
}

// OrderIDsByCustomerID maps every customer id to the ids of the orders the customer placed.
func (s Service) OrderIDsByCustomerID(ctx context.Context) (*datastruct.OrderedMap[int64, []int64], error) {
	orders, err := s.DataSource.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	result := collect.GroupByWith(orders,
		func(o shop.Order) int64 { return o.Customer.ID },
		collect.Mapping(shop.Order.GetID, collect.ToSlice[int64]()))
	s.logResult(ctx, "OrderIDsByCustomerID", result.String())
	return result, nil
}

// OrderTotals maps every order id to the total price of the order.
func (s Service) OrderTotals(ctx context.Context) (*datastruct.OrderedMap[int64, float64], error) {
	orders, err := s.DataSource.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	result, err := collect.ToMap(orders, shop.Order.GetID, shop.Order.TotalPrice)
	if err != nil {
		return nil, err
	}
	s.logResult(ctx, "OrderTotals", result.String())
	return result, nil
}

// OrderTotalsReduce is OrderTotals where each total is folded from zero.
func (s Service) OrderTotalsReduce(ctx context.Context) (*datastruct.OrderedMap[int64, float64], error) {
	orders, err := s.DataSource.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	result, err := collect.ToMap(orders, shop.Order.GetID, func(o shop.Order) float64 {
		return slicekit.Fold(o.Products, 0.0, func(total float64, p shop.Product) float64 { return total + p.Price })
	})
	if err != nil {
		return nil, err
	}
	s.logResult(ctx, "OrderTotalsReduce", result.String())
	return result, nil
}

// ProductNamesByCategory maps every category to the names of its products.
func (s Service) ProductNamesByCategory(ctx context.Context) (*datastruct.OrderedMap[string, []string], error) {
	products, err := s.DataSource.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	result := collect.GroupByWith(products, shop.Product.GetCategory,
		collect.Mapping(shop.Product.GetName, collect.ToSlice[string]()))
	s.logResult(ctx, "ProductNamesByCategory", result.String())
	return result, nil
}

// MostExpensiveByCategory picks the most expensive product of every category.
// On a price tie the product listed first wins.
func (s Service) MostExpensiveByCategory(ctx context.Context) (*datastruct.OrderedMap[string, shop.Product], error) {
	products, err := s.DataSource.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	result := collect.GroupByWith(products, shop.Product.GetCategory, collect.MaxBy(shop.ByPrice))
	s.logResult(ctx, "MostExpensiveByCategory", result.String())
	return result, nil
}

func (s Service) MostExpensiveNameByCategory(ctx context.Context) (*datastruct.OrderedMap[string, string], error) {
	products, err := s.DataSource.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	result := collect.GroupByWith(products, shop.Product.GetCategory,
		collect.AndThen(collect.MaxBy(shop.ByPrice), shop.Product.GetName))
	s.logResult(ctx, "MostExpensiveNameByCategory", result.String())
	return result, nil
}

func orderIDs(orders []shop.Order) []int64 {
	return slicekit.Map(orders, shop.Order.GetID)
}

var discardLogger = &logging.Logger{Out: io.Discard}

func (s Service) logger() *logging.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return discardLogger
}

func (s Service) logResult(ctx context.Context, query string, result any) {
	s.logger().Debug(ctx, "query executed",
		logging.Field("query", query),
		logging.Field("result", result))
}

var _ = logging.RegisterType[mathkit.Stats](func(ctx context.Context, stats mathkit.Stats) logging.Detail {
	if stats.IsEmpty() {
		return logging.Fields{"count": 0}
	}
	return logging.Fields{
		"count":   stats.Count,
		"sum":     stats.Sum,
		"min":     stats.Min,
		"max":     stats.Max,
		"average": stats.Average(),
	}
})
