// Package shop defines the customer, product and order entities that query pipelines run over,
// together with the predicates and comparators commonly used on them.
//
// Entities are immutable values.
// Operations that would change an entity, such as a discount, return a modified copy instead.
package shop

import (
	"fmt"

	"go.llib.dev/shopquery/pkg/mathkit"
)

type Customer struct {
	ID    int64  `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Tier  int    `json:"tier" yaml:"tier"`
	Email string `json:"email" yaml:"email"`
}

func (c Customer) GetID() int64 { return c.ID }

func (c Customer) String() string {
	return fmt.Sprintf("Customer(id=%d, name=%s, tier=%d)", c.ID, c.Name, c.Tier)
}

// Product is equal to another Product when every field is equal.
type Product struct {
	ID       int64   `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Category string  `json:"category" yaml:"category"`
	Price    float64 `json:"price" yaml:"price"`
}

func (p Product) GetID() int64 { return p.ID }

func (p Product) GetName() string { return p.Name }

func (p Product) GetCategory() string { return p.Category }

func (p Product) GetPrice() float64 { return p.Price }

// WithPrice returns a copy of the product with the given price.
func (p Product) WithPrice(price float64) Product {
	p.Price = price
	return p
}

// Discount returns a copy of the product with its price reduced by rate,
// so Discount(0.1) is a 10% discount.
func (p Product) Discount(rate float64) Product {
	return p.WithPrice(p.Price * (1 - rate))
}

func (p Product) String() string {
	return fmt.Sprintf("Product(id=%d, name=%s, category=%s, price=%v)", p.ID, p.Name, p.Category, p.Price)
}

// Order is identified by its ID.
// Orders hold their products by value,
// thus the same product placed in multiple orders compares equal.
type Order struct {
	ID           int64     `json:"id" yaml:"id"`
	OrderDate    Date      `json:"order_date" yaml:"order_date"`
	DeliveryDate Date      `json:"delivery_date" yaml:"delivery_date"`
	Status       string    `json:"status" yaml:"status"`
	Customer     Customer  `json:"customer" yaml:"customer"`
	Products     []Product `json:"products" yaml:"products"`
}

const (
	StatusNew       = "NEW"
	StatusDelivered = "DELIVERED"
)

func (o Order) GetID() int64 { return o.ID }

func (o Order) GetCustomer() Customer { return o.Customer }

func (o Order) GetProducts() []Product { return o.Products }

func (o Order) GetOrderDate() Date { return o.OrderDate }

func (o Order) TotalPrice() float64 {
	return mathkit.Sum(o.Products, Product.GetPrice)
}

func (o Order) String() string {
	return fmt.Sprintf("Order(id=%d, orderDate=%s, status=%s, customer=%d, products=%d)",
		o.ID, o.OrderDate, o.Status, o.Customer.ID, len(o.Products))
}
