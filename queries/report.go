package queries

import (
	"context"
	"time"

	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/shopquery/shop"
)

// ReportParams are the arguments the report passes to the parameterised queries.
type ReportParams struct {
	Category     string
	PriceLimit   float64
	BabyCategory string
	ToyCategory  string
	DiscountRate float64
	Tier         int
	From, To     shop.Date
	Limit        int
	Day          shop.Date
	Year         int
	Month        time.Month
}

// DefaultReportParams tells about books above 100, tier 2 orders of February and March 2021,
// and the orders placed on 15 March 2021.
func DefaultReportParams() ReportParams {
	return ReportParams{
		Category:     "Books",
		PriceLimit:   100,
		BabyCategory: "Baby",
		ToyCategory:  "Toys",
		DiscountRate: 0.1,
		Tier:         2,
		From:         shop.NewDate(2021, time.February, 1),
		To:           shop.NewDate(2021, time.April, 1),
		Limit:        3,
		Day:          shop.NewDate(2021, time.March, 15),
		Year:         2021,
		Month:        time.February,
	}
}

// Report runs every query of the catalogue once, and stops at the first failing query.
func (s Service) Report(ctx context.Context, p ReportParams) error {
	steps := []struct {
		Name string
		Run  func(context.Context) error
	}{
		{"ProductsInCategoryAbove", func(ctx context.Context) error {
			_, err := s.ProductsInCategoryAbove(ctx, p.Category, p.PriceLimit)
			return err
		}},
		{"OrdersWithProductCategory", func(ctx context.Context) error {
			_, err := s.OrdersWithProductCategory(ctx, p.BabyCategory)
			return err
		}},
		{"DiscountedProducts", func(ctx context.Context) error {
			_, err := s.DiscountedProducts(ctx, p.ToyCategory, p.DiscountRate)
			return err
		}},
		{"ProductsOrderedByTierBetween", func(ctx context.Context) error {
			_, err := s.ProductsOrderedByTierBetween(ctx, p.Tier, p.From, p.To)
			return err
		}},
		{"CheapestProducts", func(ctx context.Context) error {
			_, err := s.CheapestProducts(ctx, p.Category, p.Limit)
			return err
		}},
		{"MostRecentOrders", func(ctx context.Context) error {
			_, err := s.MostRecentOrders(ctx, p.Limit)
			return err
		}},
		{"ProductsOrderedOn", func(ctx context.Context) error {
			_, err := s.ProductsOrderedOn(ctx, p.Day)
			return err
		}},
		{"TotalLumpSum", func(ctx context.Context) error {
			_, err := s.TotalLumpSum(ctx, p.Year, p.Month)
			return err
		}},
		{"TotalLumpReduce", func(ctx context.Context) error {
			_, err := s.TotalLumpReduce(ctx, p.Year, p.Month)
			return err
		}},
		{"AveragePaidOn", func(ctx context.Context) error {
			_, err := s.AveragePaidOn(ctx, p.Day)
			return err
		}},
		{"CategoryStatistics", func(ctx context.Context) error {
			_, err := s.CategoryStatistics(ctx, p.Category)
			return err
		}},
		{"ProductCountByOrder", func(ctx context.Context) error {
			_, err := s.ProductCountByOrder(ctx)
			return err
		}},
		{"OrdersByCustomer", func(ctx context.Context) error {
			_, err := s.OrdersByCustomer(ctx)
			return err
		}},
		{"OrderIDsByCustomerID", func(ctx context.Context) error {
			_, err := s.OrderIDsByCustomerID(ctx)
			return err
		}},
		{"OrderTotals", func(ctx context.Context) error {
			_, err := s.OrderTotals(ctx)
			return err
		}},
		{"OrderTotalsReduce", func(ctx context.Context) error {
			_, err := s.OrderTotalsReduce(ctx)
			return err
		}},
		{"ProductNamesByCategory", func(ctx context.Context) error {
			_, err := s.ProductNamesByCategory(ctx)
			return err
		}},
		{"MostExpensiveByCategory", func(ctx context.Context) error {
			_, err := s.MostExpensiveByCategory(ctx)
			return err
		}},
		{"MostExpensiveNameByCategory", func(ctx context.Context) error {
			_, err := s.MostExpensiveNameByCategory(ctx)
			return err
		}},
	}
	for _, step := range steps {
		if err := step.Run(ctx); err != nil {
			s.logger().Error(ctx, "query failed", logging.Field("query", step.Name), logging.ErrField(err))
			return err
		}
	}
	s.logger().Info(ctx, "report finished", logging.Field("queries", len(steps)))
	return nil
}
