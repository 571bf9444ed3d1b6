// Package boltdb implements shop.DataSource on top of a bolt database file.
//
// Every entity kind lives in its own bucket, keyed by the 8-byte big endian form of its ID,
// so listing returns entities in ascending ID order.
package boltdb

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/gob"
	"time"

	"github.com/boltdb/bolt"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/shopquery/shop"
)

const ErrInvalidID errorkit.Error = "ErrInvalidID"

var (
	bucketCustomers = []byte("customers")
	bucketProducts  = []byte("products")
	bucketOrders    = []byte("orders")
)

func Open(path string) (*DataSource, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return &DataSource{DB: db}, nil
}

type DataSource struct {
	DB *bolt.DB
}

var _ shop.Storage = (*DataSource)(nil)

// Close the database and release the file lock
func (ds *DataSource) Close() error {
	return ds.DB.Close()
}

func (ds *DataSource) ListCustomers(ctx context.Context) ([]shop.Customer, error) {
	return list[shop.Customer](ctx, ds.DB, bucketCustomers)
}

func (ds *DataSource) ListProducts(ctx context.Context) ([]shop.Product, error) {
	return list[shop.Product](ctx, ds.DB, bucketProducts)
}

func (ds *DataSource) ListOrders(ctx context.Context) ([]shop.Order, error) {
	return list[shop.Order](ctx, ds.DB, bucketOrders)
}

func (ds *DataSource) SaveCustomers(ctx context.Context, vs ...shop.Customer) error {
	return save(ctx, ds.DB, bucketCustomers, shop.Customer.GetID, vs)
}

func (ds *DataSource) SaveProducts(ctx context.Context, vs ...shop.Product) error {
	return save(ctx, ds.DB, bucketProducts, shop.Product.GetID, vs)
}

func (ds *DataSource) SaveOrders(ctx context.Context, vs ...shop.Order) error {
	return save(ctx, ds.DB, bucketOrders, shop.Order.GetID, vs)
}

func save[ENT any](ctx context.Context, db *bolt.DB, bucketName []byte, idOf func(ENT) int64, vs []ENT) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		for _, v := range vs {
			key, err := idToBytes(idOf(v))
			if err != nil {
				return err
			}
			value, err := encode(v)
			if err != nil {
				return err
			}
			if err := bucket.Put(key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func list[ENT any](ctx context.Context, db *bolt.DB, bucketName []byte) ([]ENT, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	vs := []ENT{}
	err := db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(_, data []byte) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var ent ENT
			if err := decode(data, &ent); err != nil {
				return err
			}
			vs = append(vs, ent)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return vs, nil
}

func idToBytes(id int64) ([]byte, error) {
	if id < 0 {
		return nil, ErrInvalidID.F("negative id: %d", id)
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b, nil
}

func encode(v any) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := gob.NewEncoder(buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte, ptr any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(ptr)
}
