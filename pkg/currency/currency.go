// Package currency formatea montos decimales con la moneda de visualización (ISO 4217).
// Los cálculos nunca pasan por aquí: es solo presentación.
package currency

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Validate verifica que el código exista en la tabla ISO 4217 de go-money.
func Validate(code string) error {
	if money.GetCurrency(strings.ToUpper(strings.TrimSpace(code))) == nil {
		return fmt.Errorf("moneda desconocida %q", code)
	}
	return nil
}

// Decimales usados con un código fuera de la tabla ISO 4217.
const unknownFraction = 2

// Formatter formatea montos en una moneda fija.
type Formatter struct {
	code string
	cur  *money.Currency // nil si el código no está en la tabla
}

// NewFormatter construye el formateador. Un código desconocido se formatea con dos decimales,
// sin símbolo ni separador de miles y con el código como sufijo ("12.00 ZZZ").
func NewFormatter(code string) Formatter {
	code = strings.ToUpper(strings.TrimSpace(code))
	return Formatter{code: code, cur: money.GetCurrency(code)}
}

// Code código ISO de la moneda.
func (f Formatter) Code() string { return f.code }

// Format monto con símbolo, separadores y los decimales de la moneda, redondeado a la mitad hacia arriba.
func (f Formatter) Format(amount decimal.Decimal) string {
	if f.cur == nil {
		return amount.StringFixed(unknownFraction) + " " + f.code
	}
	frac := int32(f.cur.Fraction)
	minor := amount.Round(frac).Shift(frac).IntPart()
	return f.cur.Formatter().Format(minor)
}

// Format atajo para un formateo suelto.
func Format(amount decimal.Decimal, code string) string {
	return NewFormatter(code).Format(amount)
}
