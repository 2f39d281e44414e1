package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateFormat formato ISO-8601 con el que se escriben las fechas.
const DateFormat = "2006-01-02"

// Formatos aceptados al leer: siempre año/mes/día, mes y día de uno o dos dígitos.
var readDateFormats = []string{"2006-1-2", "2006/1/2"}

// Date fecha de calendario sin hora. Todas las comparaciones de orden y rango se hacen sobre
// este tipo, nunca sobre el texto.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate devuelve la fecha normalizada (ej. 31 de abril → 1 de mayo).
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{t.Year(), t.Month(), t.Day()}
}

// DateOf trunca un instante a su fecha de calendario (en la zona del instante).
func DateOf(t time.Time) Date {
	return Date{t.Year(), t.Month(), t.Day()}
}

// Today fecha local actual.
func Today() Date { return DateOf(time.Now()) }

// ParseDate interpreta una fecha en ISO (2024-06-01, 2024-6-1) o con barras (2024/06/01).
// Formatos con el día primero se rechazan.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, fmt.Errorf("fecha vacía")
	}
	for _, layout := range readDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("fecha inválida %q", s)
}

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }

// IsZero indica si la fecha no fue asignada.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Time medianoche UTC de la fecha.
func (d Date) Time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DateFormat)
}

// Compare devuelve -1, 0 o +1 según d sea anterior, igual o posterior a o.
func (d Date) Compare(o Date) int {
	switch {
	case d.y != o.y:
		return cmpInt(d.y, o.y)
	case d.m != o.m:
		return cmpInt(int(d.m), int(o.m))
	default:
		return cmpInt(d.d, o.d)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("fecha: se esperaba texto: %w", err)
	}
	if strings.TrimSpace(s) == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
