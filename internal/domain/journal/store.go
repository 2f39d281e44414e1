package journal

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// Resolver traduce la referencia de ítem de una candidata a su clave de stock
// (ver catalog.Index.Resolve).
type Resolver interface {
	Resolve(ref string) (item, barcode string)
}

// Store log de transacciones en orden de agregado.
type Store struct {
	txs     []entity.Transaction
	byID    map[string]int
	nextSeq uint64
	newID   func() string
	now     func() time.Time
}

// NewStore construye un registro vacío. La primera secuencia asignada es 1.
func NewStore() *Store {
	return &Store{
		byID:    make(map[string]int),
		nextSeq: 1,
		newID:   func() string { return uuid.New().String() },
		now:     time.Now,
	}
}

// Prepare valida la candidata y construye la transacción (id, secuencia, montos) sin agregarla.
// Dos Prepare seguidos sin Commit devuelven la misma secuencia.
func (s *Store) Prepare(c Candidate, r Resolver) (entity.Transaction, error) {
	if err := Validate(c); err != nil {
		return entity.Transaction{}, err
	}

	tx := entity.Transaction{
		ID:           s.newID(),
		Seq:          s.nextSeq,
		Date:         c.Date,
		Kind:         c.Kind,
		Description:  strings.TrimSpace(c.Description),
		Counterparty: strings.TrimSpace(c.Counterparty),
		CreatedAt:    s.now(),
	}

	var amount decimal.Decimal
	if c.Kind.IsCommerce() {
		tx.Item, tx.Barcode = resolve(r, c.ItemRef)
		tx.Quantity = c.Quantity
		tx.UnitPrice = c.UnitPrice
		amount = c.Quantity.Mul(c.UnitPrice)
	} else {
		amount = expenseAmount(c)
		tx.Quantity = c.Quantity
		tx.UnitPrice = c.UnitPrice
	}
	tx.AmountIn, tx.AmountOut = route(c.Kind, amount)

	if err := checkExclusive(tx); err != nil {
		return entity.Transaction{}, err
	}
	return tx, nil
}

func resolve(r Resolver, ref string) (string, string) {
	if r == nil {
		return strings.TrimSpace(ref), ""
	}
	return r.Resolve(ref)
}

// Commit agrega una transacción preparada por este mismo Store.
func (s *Store) Commit(tx entity.Transaction) {
	s.byID[tx.ID] = len(s.txs)
	s.txs = append(s.txs, tx)
	if tx.Seq >= s.nextSeq {
		s.nextSeq = tx.Seq + 1
	}
}

// Append Prepare + Commit.
func (s *Store) Append(c Candidate, r Resolver) (entity.Transaction, error) {
	tx, err := s.Prepare(c, r)
	if err != nil {
		return entity.Transaction{}, err
	}
	s.Commit(tx)
	return tx, nil
}

// Get busca una transacción por id.
func (s *Store) Get(id string) (entity.Transaction, bool) {
	i, ok := s.byID[id]
	if !ok {
		return entity.Transaction{}, false
	}
	return s.txs[i], true
}

// Remove borra el registro completo. Los agregados se recalculan desde lo que queda.
func (s *Store) Remove(id string) error {
	i, ok := s.byID[id]
	if !ok {
		return &domain.NotFoundError{Resource: "transacción", ID: id}
	}
	s.txs = slices.Delete(s.txs, i, i+1)
	s.reindex()
	return nil
}

// List transacciones en orden de agregado; pred nil devuelve todas.
func (s *Store) List(pred func(entity.Transaction) bool) []entity.Transaction {
	out := make([]entity.Transaction, 0, len(s.txs))
	for _, tx := range s.txs {
		if pred == nil || pred(tx) {
			out = append(out, tx)
		}
	}
	return out
}

// All vista de solo lectura del log (no copiar ni modificar).
func (s *Store) All() []entity.Transaction { return s.txs }

// Len cantidad de transacciones.
func (s *Store) Len() int { return len(s.txs) }

// Restore reemplaza el log con transacciones persistidas, ordenadas por secuencia.
// La próxima secuencia continúa después de la mayor cargada.
func (s *Store) Restore(txs []entity.Transaction) error {
	loaded := slices.Clone(txs)
	slices.SortStableFunc(loaded, func(a, b entity.Transaction) int {
		switch {
		case a.Seq < b.Seq:
			return -1
		case a.Seq > b.Seq:
			return 1
		}
		return 0
	})
	for i, tx := range loaded {
		if err := checkExclusive(tx); err != nil {
			return err
		}
		if i > 0 && loaded[i-1].Seq == tx.Seq {
			return domain.NewValidationError("seq", "repetida al cargar")
		}
	}
	s.txs = loaded
	s.reindex()
	s.nextSeq = 1
	if n := len(loaded); n > 0 {
		s.nextSeq = loaded[n-1].Seq + 1
	}
	return nil
}

func (s *Store) reindex() {
	s.byID = make(map[string]int, len(s.txs))
	for i, tx := range s.txs {
		s.byID[tx.ID] = i
	}
}
