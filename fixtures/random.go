package fixtures

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/Pallinder/go-randomdata"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/shopquery/pkg/slicekit"
	"go.llib.dev/shopquery/shop"
	"go.llib.dev/testcase/random"
)

var Categories = []string{"Books", "Toys", "Baby", "Grocery", "Games"}

type Option = option.Option[Config]

// Config tells the random factories what kind of entities they should make.
type Config struct {
	Categories []string
	Tiers      []int
	MinPrice   float64
	MaxPrice   float64
	From       shop.Date
	To         shop.Date
	// MaxProducts is the upper limit of how many products a random order has.
	MaxProducts int
}

func (c *Config) Init() {
	c.Categories = Categories
	c.Tiers = []int{1, 2, 3}
	c.MinPrice = 10
	c.MaxPrice = 1000
	c.From = shop.NewDate(2021, time.January, 1)
	c.To = shop.NewDate(2021, time.April, 30)
	c.MaxProducts = 5
}

func WithCategories(categories ...string) Option {
	return option.Func[Config](func(c *Config) { c.Categories = categories })
}

func WithTiers(tiers ...int) Option {
	return option.Func[Config](func(c *Config) { c.Tiers = tiers })
}

func WithPriceRange(min, max float64) Option {
	return option.Func[Config](func(c *Config) {
		c.MinPrice = min
		c.MaxPrice = max
	})
}

// WithDateRange sets the inclusive range of the order dates.
func WithDateRange(from, to shop.Date) Option {
	return option.Func[Config](func(c *Config) {
		c.From = from
		c.To = to
	})
}

func WithMaxProducts(n int) Option {
	return option.Func[Config](func(c *Config) { c.MaxProducts = n })
}

// go-randomdata uses a shared source, which is not safe for concurrent use.
var mutex sync.Mutex

func Customer(rnd *random.Random, id int64, opts ...Option) shop.Customer {
	c := option.ToConfig[Config](opts)
	mutex.Lock()
	defer mutex.Unlock()
	name := randomdata.FullName(randomdata.RandomGender)
	return shop.Customer{
		ID:    id,
		Name:  name,
		Tier:  random.Pick(rnd, c.Tiers...),
		Email: strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
	}
}

func Product(rnd *random.Random, id int64, opts ...Option) shop.Product {
	c := option.ToConfig[Config](opts)
	mutex.Lock()
	name := strings.ToLower(randomdata.SillyName())
	mutex.Unlock()
	return shop.Product{
		ID:       id,
		Name:     name,
		Category: random.Pick(rnd, c.Categories...),
		Price:    randomPrice(rnd, c.MinPrice, c.MaxPrice),
	}
}

// Order places an order for a random customer with a random selection of distinct products.
// Without customers the order has a zero Customer, and without products it has no products.
func Order(rnd *random.Random, id int64, customers []shop.Customer, products []shop.Product, opts ...Option) shop.Order {
	c := option.ToConfig[Config](opts)
	orderDate := randomDate(rnd, c.From, c.To)
	var customer shop.Customer
	if 0 < len(customers) {
		customer = random.Pick(rnd, customers...)
	}
	var n int
	if 0 < len(products) {
		n = rnd.IntBetween(1, max(1, min(c.MaxProducts, len(products))))
	}
	return shop.Order{
		ID:           id,
		OrderDate:    orderDate,
		DeliveryDate: shop.DateOf(orderDate.Time().AddDate(0, 0, rnd.IntBetween(1, 7))),
		Status:       random.Pick(rnd, shop.StatusNew, shop.StatusDelivered),
		Customer:     customer,
		Products:     pickProducts(rnd, products, n),
	}
}

// Random makes a data set with sequential ids,
// where every order refers to the customers and products of the same data set.
func Random(rnd *random.Random, customers, products, orders int, opts ...Option) DataSet {
	var ds DataSet
	for i := 1; i <= customers; i++ {
		ds.Customers = append(ds.Customers, Customer(rnd, int64(i), opts...))
	}
	for i := 1; i <= products; i++ {
		ds.Products = append(ds.Products, Product(rnd, int64(i), opts...))
	}
	if len(ds.Customers) == 0 || len(ds.Products) == 0 {
		return ds
	}
	for i := 1; i <= orders; i++ {
		ds.Orders = append(ds.Orders, Order(rnd, int64(i), ds.Customers, ds.Products, opts...))
	}
	return ds
}

func pickProducts(rnd *random.Random, products []shop.Product, n int) []shop.Product {
	indexes := map[int]struct{}{}
	for len(indexes) < n {
		indexes[rnd.IntBetween(0, len(products)-1)] = struct{}{}
	}
	var picked []shop.Product
	for i, p := range products {
		if _, ok := indexes[i]; ok {
			picked = append(picked, p)
		}
	}
	return slicekit.SortBy(picked, shop.ByPrice)
}

func randomPrice(rnd *random.Random, min, max float64) float64 {
	cents := rnd.IntBetween(int(math.Round(min*100)), int(math.Round(max*100)))
	return float64(cents) / 100
}

func randomDate(rnd *random.Random, from, to shop.Date) shop.Date {
	days := int(to.Time().Sub(from.Time()).Hours() / 24)
	if days <= 0 {
		return from
	}
	return shop.DateOf(from.Time().AddDate(0, 0, rnd.IntBetween(0, days)))
}
