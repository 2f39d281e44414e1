// Package storage elige dónde se persiste el journal según la configuración.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/ledger-api/internal/application/bookkeeping"
	"github.com/jhoicas/ledger-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ledger-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/ledger-api/pkg/config"
)

// Journal runner listo para el motor más su cierre. Runner nil significa solo memoria.
type Journal struct {
	Runner bookkeeping.TxRunner
	Driver string
	close  func() error
}

// Close libera la conexión subyacente, si la hay.
func (j *Journal) Close() error {
	if j.close == nil {
		return nil
	}
	return j.close()
}

// Open abre el journal del driver configurado.
func Open(ctx context.Context, cfg config.StorageConfig, db config.DBConfig) (*Journal, error) {
	switch cfg.Driver {
	case config.StorageMemory, "":
		return &Journal{Driver: config.StorageMemory}, nil
	case config.StorageSQLite:
		database, err := sqlite.NewDatabase(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Journal{Runner: database.TxRunner(), Driver: cfg.Driver, close: database.Close}, nil
	case config.StoragePostgres:
		runner, pool, err := postgres.Open(ctx, db)
		if err != nil {
			return nil, err
		}
		return &Journal{Runner: runner, Driver: cfg.Driver, close: func() error { pool.Close(); return nil }}, nil
	default:
		return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Driver)
	}
}
