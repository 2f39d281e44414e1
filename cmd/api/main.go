package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/ledger-api/internal/application/bookkeeping"
	"github.com/jhoicas/ledger-api/internal/domain/catalog"
	"github.com/jhoicas/ledger-api/internal/domain/inventory"
	infrapdf "github.com/jhoicas/ledger-api/internal/infrastructure/pdf"
	"github.com/jhoicas/ledger-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/ledger-api/internal/interfaces/http"
	"github.com/jhoicas/ledger-api/pkg/config"
	"github.com/jhoicas/ledger-api/pkg/currency"
	"github.com/jhoicas/ledger-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if err := currency.Validate(cfg.App.Currency); err != nil {
		log.Warn().Err(err).Str("currency", cfg.App.Currency).Msg("moneda desconocida; se mostrará sin símbolo")
	}

	ctx := context.Background()
	journal, err := storage.Open(ctx, cfg.Storage, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir journal")
	}
	defer journal.Close()

	engine, err := bookkeeping.NewEngine(bookkeeping.Config{
		Thresholds: inventory.Thresholds{Critical: cfg.Ledger.CriticalThreshold, Low: cfg.Ledger.LowThreshold},
		TopN:       cfg.Ledger.ReportTopN,
		Catalog: catalog.Options{
			BarcodeLength: cfg.Ledger.BarcodeLength,
			MaxAttempts:   cfg.Ledger.BarcodeMaxAttempts,
		},
	}, journal.Runner, log.Component("engine"))
	if err != nil {
		log.Fatal().Err(err).Msg("configurar motor")
	}
	if err := engine.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar journal")
	}

	// PDF: estado de cuenta, balance de almacén y etiquetas
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	exportUC := bookkeeping.NewExportUseCase(engine, pdfGenerator, cfg.App.Name, cfg.App.Currency)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ledger API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Engine: engine,
		Export: exportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
