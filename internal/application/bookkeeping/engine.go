// Package bookkeeping orquesta el registro de transacciones, el catálogo y las vistas derivadas
// bajo un único candado. Las mutaciones son todo-o-nada: validación, chequeo de stock,
// escritura en el journal y agregado ocurren dentro de la misma sección crítica.
package bookkeeping

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/catalog"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/inventory"
	"github.com/jhoicas/ledger-api/internal/domain/journal"
	"github.com/jhoicas/ledger-api/internal/domain/ledger"
	"github.com/jhoicas/ledger-api/internal/domain/report"
	"github.com/jhoicas/ledger-api/internal/domain/repository"
)

// Config parámetros del motor. Los valores cero toman los defaults de cada paquete.
type Config struct {
	Thresholds inventory.Thresholds
	TopN       int
	Catalog    catalog.Options
}

// Engine contexto de sesión: log, catálogo y saldo corrido en caché.
type Engine struct {
	mu      sync.RWMutex
	store   *journal.Store
	catalog *catalog.Index
	journal TxRunner // nil: solo en memoria
	cfg     Config
	log     zerolog.Logger

	entries []ledger.Entry // Recompute del log vigente; se rehace en cada mutación
}

// NewEngine construye el motor. runner puede ser nil.
func NewEngine(cfg Config, runner TxRunner, log zerolog.Logger) (*Engine, error) {
	if cfg.Thresholds.Critical.IsZero() && cfg.Thresholds.Low.IsZero() {
		cfg.Thresholds = inventory.DefaultThresholds()
	}
	if err := cfg.Thresholds.Validate(); err != nil {
		return nil, err
	}
	if cfg.TopN <= 0 {
		cfg.TopN = report.DefaultTopN
	}
	return &Engine{
		store:   journal.NewStore(),
		catalog: catalog.New(cfg.Catalog),
		journal: runner,
		cfg:     cfg,
		log:     log,
		entries: []ledger.Entry{},
	}, nil
}

// Load hidrata el log y el catálogo desde el journal. Sin journal no hace nada.
func (e *Engine) Load(ctx context.Context) error {
	if e.journal == nil {
		return nil
	}
	var (
		txs   []entity.Transaction
		items []entity.Item
	)
	err := e.journal.Run(ctx, func(txRepo repository.TransactionRepository, itemRepo repository.ItemRepository) error {
		var err error
		if txs, err = txRepo.List(ctx); err != nil {
			return err
		}
		items, err = itemRepo.List(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("cargar journal: %w", err)
	}

	// se hidratan valores nuevos y solo se publican si ambos cargan
	store := journal.NewStore()
	if err := store.Restore(txs); err != nil {
		return fmt.Errorf("restaurar transacciones: %w", err)
	}
	idx := catalog.New(e.cfg.Catalog)
	if err := idx.Restore(items); err != nil {
		return fmt.Errorf("restaurar catálogo: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.store, e.catalog = store, idx
	e.refresh()
	e.log.Info().Int("transactions", len(txs)).Int("items", len(items)).Msg("journal cargado")
	return nil
}

// SubmitTransaction valida la candidata, verifica stock para ventas, la escribe en el journal
// y la agrega al log. Ante cualquier error el estado queda intacto.
func (e *Engine) SubmitTransaction(ctx context.Context, c journal.Candidate) (entity.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	tx, err := e.store.Prepare(c, e.catalog)
	if err != nil {
		e.log.Debug().Err(err).Str("kind", string(c.Kind)).Msg("transacción rechazada")
		return entity.Transaction{}, err
	}

	if tx.Kind.IsSale() {
		if err := inventory.CheckSale(e.store.All(), tx.Item, tx.Quantity); err != nil {
			e.log.Warn().Err(err).Str("kind", string(tx.Kind)).Str("item", tx.Item).
				Str("quantity", tx.Quantity.String()).Msg("venta rechazada por stock")
			return entity.Transaction{}, err
		}
	}

	if err := e.persist(ctx, func(txRepo repository.TransactionRepository, _ repository.ItemRepository) error {
		return txRepo.Append(ctx, tx)
	}); err != nil {
		return entity.Transaction{}, err
	}

	e.store.Commit(tx)
	e.refresh()
	e.log.Info().Str("tx_id", tx.ID).Str("kind", string(tx.Kind)).Str("item", tx.Item).
		Uint64("seq", tx.Seq).Str("amount_in", tx.AmountIn.String()).Str("amount_out", tx.AmountOut.String()).
		Msg("transacción registrada")
	return tx, nil
}

// DeleteTransaction borra el registro completo. Un id inexistente devuelve NotFoundError y
// no cambia nada; borrar una entrada ya consumida por ventas devuelve InsufficientStockError.
func (e *Engine) DeleteTransaction(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	tx, ok := e.store.Get(id)
	if !ok {
		return &domain.NotFoundError{Resource: "transacción", ID: id}
	}
	if err := inventory.CheckRemoval(e.store.All(), tx); err != nil {
		e.log.Warn().Err(err).Str("tx_id", id).Str("item", tx.Item).Msg("borrado rechazado por stock")
		return err
	}

	if err := e.persist(ctx, func(txRepo repository.TransactionRepository, _ repository.ItemRepository) error {
		return txRepo.Remove(ctx, id)
	}); err != nil {
		return err
	}

	if err := e.store.Remove(id); err != nil {
		return err
	}
	e.refresh()
	e.log.Info().Str("tx_id", id).Str("kind", string(tx.Kind)).Uint64("seq", tx.Seq).Msg("transacción borrada")
	return nil
}

// RegisterBarcode agrega un ítem al catálogo; barcode vacío genera uno.
func (e *Engine) RegisterBarcode(ctx context.Context, item entity.Item, barcode string) (entity.Item, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	prepared, err := e.catalog.Prepare(item, barcode)
	if err != nil {
		e.log.Debug().Err(err).Str("barcode", barcode).Msg("código de barras rechazado")
		return entity.Item{}, err
	}
	if err := e.persist(ctx, func(_ repository.TransactionRepository, itemRepo repository.ItemRepository) error {
		return itemRepo.Save(ctx, prepared)
	}); err != nil {
		return entity.Item{}, err
	}
	e.catalog.Commit(prepared)
	e.log.Info().Str("barcode", prepared.Barcode).Str("item", prepared.Name).Msg("código de barras registrado")
	return prepared, nil
}

// DeleteBarcode quita la entrada del catálogo; las transacciones conservan su clave.
func (e *Engine) DeleteBarcode(ctx context.Context, barcode string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.catalog.Lookup(barcode); !ok {
		return &domain.NotFoundError{Resource: "código de barras", ID: barcode}
	}
	if err := e.persist(ctx, func(_ repository.TransactionRepository, itemRepo repository.ItemRepository) error {
		return itemRepo.Delete(ctx, barcode)
	}); err != nil {
		return err
	}
	if err := e.catalog.Delete(barcode); err != nil {
		return err
	}
	e.log.Info().Str("barcode", barcode).Msg("código de barras borrado")
	return nil
}

// persist escribe en el journal si hay uno configurado. Se llama con el candado tomado.
func (e *Engine) persist(ctx context.Context, fn func(repository.TransactionRepository, repository.ItemRepository) error) error {
	if e.journal == nil {
		return nil
	}
	if err := e.journal.Run(ctx, fn); err != nil {
		var dup *domain.DuplicateBarcodeError
		var nf *domain.NotFoundError
		if errors.As(err, &dup) || errors.As(err, &nf) {
			return err
		}
		e.log.Error().Err(err).Msg("journal: escritura fallida")
		return fmt.Errorf("journal: %w", err)
	}
	return nil
}

func (e *Engine) refresh() {
	e.entries = ledger.Recompute(e.store.All())
}

// ─── Consultas ────────────────────────────────────────────────────────────────

// QueryStatement entradas del estado de cuenta que pasan el filtro, con saldos del log completo.
func (e *Engine) QueryStatement(f report.Filter) ([]ledger.Entry, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return report.QueryStatement(e.entries, f), nil
}

// StatementTotals totales del estado de cuenta filtrado.
func (e *Engine) StatementTotals(f report.Filter) (report.Totals, error) {
	entries, err := e.QueryStatement(f)
	if err != nil {
		return report.Totals{}, err
	}
	return report.Summarize(entries), nil
}

// Balance saldo final del log completo.
func (e *Engine) Balance() decimal.Decimal {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return ledger.Final(e.entries)
}

// InventoryReport balance de almacén con sus cortes, calculado sobre una misma vista del log.
type InventoryReport struct {
	Rows       []inventory.Row
	TotalValue decimal.Decimal
	LowStock   []inventory.Row
	TopValue   []inventory.Row
}

// InventorySnapshot filas del balance de almacén filtradas por texto.
func (e *Engine) InventorySnapshot(searchText string) []inventory.Row {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return report.FilterRows(e.snapshot(), searchText)
}

// Inventory balance filtrado más valor total, stock bajo y ranking por valor.
func (e *Engine) Inventory(searchText string) InventoryReport {
	e.mu.RLock()
	rows := e.snapshot()
	e.mu.RUnlock()

	filtered := report.FilterRows(rows, searchText)
	return InventoryReport{
		Rows:       filtered,
		TotalValue: report.InventoryValue(filtered),
		LowStock:   report.LowStock(filtered),
		TopValue:   report.TopByValue(filtered, e.cfg.TopN),
	}
}

// LowStock ítems en estado bajo o crítico.
func (e *Engine) LowStock() []inventory.Row {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return report.LowStock(e.snapshot())
}

// TopByValue los n ítems de mayor valor; n ≤ 0 usa el configurado.
func (e *Engine) TopByValue(n int) []inventory.Row {
	if n <= 0 {
		n = e.cfg.TopN
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return report.TopByValue(e.snapshot(), n)
}

func (e *Engine) snapshot() []inventory.Row {
	return inventory.Snapshot(e.store.All(), e.catalog.List(), e.cfg.Thresholds)
}

// StockOf stock vigente de un ítem, por nombre o código de barras.
func (e *Engine) StockOf(itemRef string) (item string, stock decimal.Decimal) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	item, _ = e.catalog.Resolve(itemRef)
	return item, inventory.StockOf(e.store.All(), item)
}

// StatusOf clasificación de un nivel de stock con los umbrales configurados.
func (e *Engine) StatusOf(stock decimal.Decimal) inventory.Status {
	return e.cfg.Thresholds.Classify(stock)
}

// LookupBarcode ítem registrado con ese código.
func (e *Engine) LookupBarcode(barcode string) (entity.Item, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	it, ok := e.catalog.Lookup(barcode)
	if !ok {
		return entity.Item{}, &domain.NotFoundError{Resource: "código de barras", ID: barcode}
	}
	return it, nil
}

// ListItems catálogo en orden de registro.
func (e *Engine) ListItems() []entity.Item {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.List()
}

// RepresentativeSummary desempeño por representante y monto total vendido.
func (e *Engine) RepresentativeSummary() ([]report.RepRow, decimal.Decimal) {
	e.mu.RLock()
	rows := report.RepresentativeSummary(e.store.All())
	e.mu.RUnlock()
	return rows, report.RepTotal(rows)
}

// ListTransactions log en orden de agregado; kind vacío devuelve todos los tipos.
func (e *Engine) ListTransactions(kind entity.Kind) ([]entity.Transaction, error) {
	if kind != "" && !kind.Valid() {
		return nil, domain.NewValidationError("kind", "desconocido: "+string(kind))
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	if kind == "" {
		return e.store.List(nil), nil
	}
	return e.store.List(func(tx entity.Transaction) bool { return tx.Kind == kind }), nil
}

// Len cantidad de transacciones e ítems vigentes.
func (e *Engine) Len() (transactions, items int) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.Len(), e.catalog.Len()
}
