package shop

import "context"

// DataSource exposes the materialised collections that queries run over.
// The returned slices belong to the caller.
//
//go:generate mockgen -destination shopmock/DataSource.go -package shopmock go.llib.dev/shopquery/shop DataSource
type DataSource interface {
	ListCustomers(ctx context.Context) ([]Customer, error)
	ListOrders(ctx context.Context) ([]Order, error)
	ListProducts(ctx context.Context) ([]Product, error)
}

// Seeder is the write side of a DataSource, used to load a data set into it.
// Saving an entity with an already stored ID replaces the stored entity.
type Seeder interface {
	SaveCustomers(ctx context.Context, vs ...Customer) error
	SaveProducts(ctx context.Context, vs ...Product) error
	SaveOrders(ctx context.Context, vs ...Order) error
}

type Storage interface {
	DataSource
	Seeder
}
