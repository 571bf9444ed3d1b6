// Package fixtures provides the demo data set of the shop,
// and factories for random customers, products and orders.
package fixtures

import (
	"context"
	"embed"
	"io/fs"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/shopquery/pkg/slicekit"
	"go.llib.dev/shopquery/shop"
	"gopkg.in/yaml.v3"
)

//go:embed shop.yaml
var FS embed.FS

const DefaultFile = "shop.yaml"

const ErrUnknownReference errorkit.Error = "ErrUnknownReference"

type DataSet struct {
	Customers []shop.Customer
	Products  []shop.Product
	Orders    []shop.Order
}

// document is the file format of a data set.
// Orders refer to their customer and products by id.
type document struct {
	Customers []shop.Customer `yaml:"customers"`
	Products  []shop.Product  `yaml:"products"`
	Orders    []orderRecord   `yaml:"orders"`
}

type orderRecord struct {
	ID           int64     `yaml:"id"`
	OrderDate    shop.Date `yaml:"order_date"`
	DeliveryDate shop.Date `yaml:"delivery_date"`
	Status       string    `yaml:"status"`
	Customer     int64     `yaml:"customer"`
	Products     []int64   `yaml:"products"`
}

// Default returns the embedded demo data set.
func Default() DataSet {
	ds, err := ReadFile(FS, DefaultFile)
	if err != nil {
		panic(err)
	}
	return ds
}

func ReadFile(fsys fs.FS, name string) (DataSet, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return DataSet{}, err
	}
	return Decode(data)
}

func Decode(data []byte) (DataSet, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return DataSet{}, err
	}
	customers := make(map[int64]shop.Customer, len(doc.Customers))
	for _, c := range doc.Customers {
		customers[c.ID] = c
	}
	products := make(map[int64]shop.Product, len(doc.Products))
	for _, p := range doc.Products {
		products[p.ID] = p
	}
	orders, err := slicekit.MapErr(doc.Orders, func(rec orderRecord) (shop.Order, error) {
		customer, ok := customers[rec.Customer]
		if !ok {
			return shop.Order{}, ErrUnknownReference.F("order %d refers to customer %d", rec.ID, rec.Customer)
		}
		ps, err := slicekit.MapErr(rec.Products, func(id int64) (shop.Product, error) {
			p, ok := products[id]
			if !ok {
				return shop.Product{}, ErrUnknownReference.F("order %d refers to product %d", rec.ID, id)
			}
			return p, nil
		})
		if err != nil {
			return shop.Order{}, err
		}
		return shop.Order{
			ID:           rec.ID,
			OrderDate:    rec.OrderDate,
			DeliveryDate: rec.DeliveryDate,
			Status:       rec.Status,
			Customer:     customer,
			Products:     ps,
		}, nil
	})
	if err != nil {
		return DataSet{}, err
	}
	return DataSet{
		Customers: doc.Customers,
		Products:  doc.Products,
		Orders:    orders,
	}, nil
}

// Seed saves the data set into the seeder.
func (ds DataSet) Seed(ctx context.Context, seeder shop.Seeder) error {
	if err := seeder.SaveCustomers(ctx, ds.Customers...); err != nil {
		return err
	}
	if err := seeder.SaveProducts(ctx, ds.Products...); err != nil {
		return err
	}
	return seeder.SaveOrders(ctx, ds.Orders...)
}

// Load seeds the embedded demo data set.
func Load(ctx context.Context, seeder shop.Seeder) error {
	return LoadFile(ctx, FS, DefaultFile, seeder)
}

func LoadFile(ctx context.Context, fsys fs.FS, name string, seeder shop.Seeder) error {
	ds, err := ReadFile(fsys, name)
	if err != nil {
		return err
	}
	return ds.Seed(ctx, seeder)
}
