package app

import (
	"context"
	"fmt"

	"pet-care-dashboard/internal/adapters/storage/file"
	"pet-care-dashboard/internal/adapters/storage/memory"
	pg "pet-care-dashboard/internal/adapters/storage/postgres"
	s3store "pet-care-dashboard/internal/adapters/storage/s3"
	"pet-care-dashboard/internal/adapters/storage/sqlite"
	"pet-care-dashboard/internal/platform/config"
	"pet-care-dashboard/internal/ports/kv"
)

// storeLocation describe dónde quedan los datos en disco; vacío para backends remotos o en memoria.
func storeLocation(s kv.Store) string {
	switch st := s.(type) {
	case *file.KVStore:
		return st.Root()
	case *sqlite.KVStore:
		return st.Path()
	default:
		return ""
	}
}

// OpenStore abre el backend elegido por cfg.Driver. La func devuelta libera lo que haga falta
// (nunca es nil).
func OpenStore(ctx context.Context, cfg config.StoreConfig) (kv.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.DriverMemory:
		return memory.NewKVStore(), noop, nil

	case config.DriverFile, "":
		s, err := file.New(cfg.DataDir)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil

	case config.DriverSQLite:
		s, err := sqlite.Open(cfg.SQLiteFile())
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil

	case config.DriverPostgres:
		db, err := pg.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, noop, fmt.Errorf("postgres: open: %w", err)
		}
		if err := pg.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		s := pg.NewKVStore(db)
		return s, s.Close, nil

	case config.DriverS3:
		s, err := s3store.New(ctx, s3store.Config{
			Bucket:          cfg.S3.Bucket,
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			Prefix:          cfg.S3.Prefix,
			PathStyle:       cfg.S3.PathStyle,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		})
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
