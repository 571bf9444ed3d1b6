package memory

import (
	"context"
	"slices"

	"go.llib.dev/shopquery/pkg/slicekit"
	"go.llib.dev/shopquery/shop"
)

func NewDataSource() *DataSource {
	return &DataSource{
		Customers: NewRepository(shop.Customer.GetID),
		Products:  NewRepository(shop.Product.GetID),
		Orders:    NewRepository(shop.Order.GetID),
	}
}

// DataSource keeps the shop's collections in memory.
type DataSource struct {
	Customers *Repository[shop.Customer, int64]
	Products  *Repository[shop.Product, int64]
	Orders    *Repository[shop.Order, int64]
}

var _ shop.Storage = (*DataSource)(nil)

func (ds *DataSource) ListCustomers(ctx context.Context) ([]shop.Customer, error) {
	return ds.Customers.ListAll(ctx)
}

func (ds *DataSource) ListProducts(ctx context.Context) ([]shop.Product, error) {
	return ds.Products.ListAll(ctx)
}

func (ds *DataSource) ListOrders(ctx context.Context) ([]shop.Order, error) {
	orders, err := ds.Orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return slicekit.Map(orders, cloneOrder), nil
}

func (ds *DataSource) SaveCustomers(ctx context.Context, vs ...shop.Customer) error {
	return ds.Customers.Save(ctx, vs...)
}

func (ds *DataSource) SaveProducts(ctx context.Context, vs ...shop.Product) error {
	return ds.Products.Save(ctx, vs...)
}

func (ds *DataSource) SaveOrders(ctx context.Context, vs ...shop.Order) error {
	return ds.Orders.Save(ctx, slicekit.Map(vs, cloneOrder)...)
}

func cloneOrder(o shop.Order) shop.Order {
	o.Products = slices.Clone(o.Products)
	return o
}
