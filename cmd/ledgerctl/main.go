package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/jhoicas/ledger-api/internal/application/bookkeeping"
	"github.com/jhoicas/ledger-api/internal/domain/catalog"
	"github.com/jhoicas/ledger-api/internal/domain/inventory"
	"github.com/jhoicas/ledger-api/internal/infrastructure/storage"
	"github.com/jhoicas/ledger-api/internal/interfaces/cli"
	"github.com/jhoicas/ledger-api/pkg/config"
	"github.com/jhoicas/ledger-api/pkg/currency"
	"github.com/jhoicas/ledger-api/pkg/logger"
)

var dbPath = flag.String("db", "", "archivo SQLite del journal (por defecto SQLITE_PATH)")

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cli.Register(commander, &cli.App{
		Out:      os.Stdout,
		Err:      os.Stderr,
		Open:     opener(cfg),
		Currency: currency.NewFormatter(cfg.App.Currency),
	})

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// opener sin journal persistente la CLI no tendría qué consultar: memory cae a SQLite.
func opener(cfg *config.Config) cli.OpenFunc {
	return func(ctx context.Context) (*bookkeeping.Engine, func() error, error) {
		st := cfg.Storage
		if *dbPath != "" {
			st = config.StorageConfig{Driver: config.StorageSQLite, SQLitePath: *dbPath}
		} else if st.Driver == config.StorageMemory {
			st.Driver = config.StorageSQLite
		}

		log := logger.New(logger.Config{Env: "production", Level: "warn", Output: os.Stderr})
		journal, err := storage.Open(ctx, st, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		engine, err := bookkeeping.NewEngine(bookkeeping.Config{
			Thresholds: inventory.Thresholds{Critical: cfg.Ledger.CriticalThreshold, Low: cfg.Ledger.LowThreshold},
			TopN:       cfg.Ledger.ReportTopN,
			Catalog: catalog.Options{
				BarcodeLength: cfg.Ledger.BarcodeLength,
				MaxAttempts:   cfg.Ledger.BarcodeMaxAttempts,
			},
		}, journal.Runner, log.Component("engine"))
		if err != nil {
			_ = journal.Close()
			return nil, nil, err
		}
		if err := engine.Load(ctx); err != nil {
			_ = journal.Close()
			return nil, nil, err
		}
		return engine, journal.Close, nil
	}
}
