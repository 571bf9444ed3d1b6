package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	uuid "github.com/satori/go.uuid"
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/shopquery/adapter/boltdb"
	"go.llib.dev/shopquery/adapter/localfs"
	"go.llib.dev/shopquery/adapter/memory"
	"go.llib.dev/shopquery/fixtures"
	"go.llib.dev/shopquery/queries"
	"go.llib.dev/shopquery/shop"
)

type Config struct {
	Storage  string `env:"SHOPQUERY_STORAGE" enum:"memory;bolt;" default:"memory"`
	BoltPath string `env:"SHOPQUERY_BOLT_PATH" default:"shopquery.db"`
	// FixturePath is the data set to seed the storage with.
	// When empty, the embedded demo data set is used.
	FixturePath string `env:"SHOPQUERY_FIXTURE_PATH"`
	LogLevel    string `env:"SHOPQUERY_LOG_LEVEL" enum:"debug;info;warn;error;" default:"debug"`
}

func main() {
	ctx := logging.ContextWith(context.Background(),
		logging.Field("app", "shopquery"),
		logging.Field("run_id", uuid.NewV4().String()))

	if err := Main(ctx, os.Stdout); err != nil {
		(&logging.Logger{Out: os.Stderr}).Fatal(ctx, "error in main", logging.ErrField(err))
		os.Exit(1)
	}
}

func Main(ctx context.Context, out io.Writer) (rErr error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return err
	}

	logger := &logging.Logger{Out: out, Level: logging.Level(c.LogLevel)}

	storage, closeStorage, err := openStorage(c)
	if err != nil {
		return err
	}
	defer errorkit.Finish(&rErr, closeStorage)

	if err := seed(ctx, c, storage); err != nil {
		return err
	}
	logger.Info(ctx, "storage seeded",
		logging.Field("storage", c.Storage),
		logging.Field("fixture", fixtureName(c)))

	svc := queries.Service{DataSource: storage, Logger: logger}
	return svc.Report(ctx, queries.DefaultReportParams())
}

func openStorage(c Config) (shop.Storage, func() error, error) {
	switch c.Storage {
	case "bolt":
		ds, err := boltdb.Open(c.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		return ds, ds.Close, nil
	default:
		return memory.NewDataSource(), func() error { return nil }, nil
	}
}

func seed(ctx context.Context, c Config, storage shop.Seeder) error {
	if c.FixturePath == "" {
		return fixtures.Load(ctx, storage)
	}
	fsys := localfs.FileSystem{RootPath: filepath.Dir(c.FixturePath)}
	return fixtures.LoadFile(ctx, fsys, filepath.Base(c.FixturePath), storage)
}

func fixtureName(c Config) string {
	if c.FixturePath == "" {
		return fixtures.DefaultFile
	}
	return c.FixturePath
}
