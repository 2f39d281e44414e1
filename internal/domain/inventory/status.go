package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/domain"
)

// Status clasificación del nivel de stock. Solo informa; nunca bloquea transacciones.
type Status string

const (
	StatusGood     Status = "good"
	StatusLow      Status = "low"
	StatusCritical Status = "critical"
)

// Thresholds umbrales configurables: crítico si stock ≤ Critical, bajo si ≤ Low.
type Thresholds struct {
	Critical decimal.Decimal
	Low      decimal.Decimal
}

// DefaultThresholds crítico ≤ 10, bajo ≤ 20.
func DefaultThresholds() Thresholds {
	return Thresholds{Critical: decimal.NewFromInt(10), Low: decimal.NewFromInt(20)}
}

// Validate exige 0 ≤ Critical ≤ Low.
func (t Thresholds) Validate() error {
	if t.Critical.IsNegative() {
		return domain.NewValidationError("critical_threshold", "no puede ser negativo")
	}
	if t.Low.LessThan(t.Critical) {
		return domain.NewValidationError("low_threshold", "debe ser mayor o igual al umbral crítico")
	}
	return nil
}

// Classify estado para un nivel de stock.
func (t Thresholds) Classify(stock decimal.Decimal) Status {
	switch {
	case stock.LessThanOrEqual(t.Critical):
		return StatusCritical
	case stock.LessThanOrEqual(t.Low):
		return StatusLow
	default:
		return StatusGood
	}
}

// NeedsAttention estados que aparecen en el reporte de stock bajo.
func (s Status) NeedsAttention() bool { return s == StatusLow || s == StatusCritical }
