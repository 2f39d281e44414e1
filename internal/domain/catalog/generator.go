package catalog

import (
	"math/rand/v2"
	"strings"
)

// Generator produce candidatos de código de barras. Puede repetir valores; el índice
// se encarga de reintentar.
type Generator interface {
	Next() string
}

// RandomGenerator códigos numéricos de longitud fija con primer dígito distinto de cero.
type RandomGenerator struct {
	length int
}

// NewRandomGenerator construye el generador para la longitud indicada (mínimo 1).
func NewRandomGenerator(length int) *RandomGenerator {
	if length < 1 {
		length = DefaultBarcodeLength
	}
	return &RandomGenerator{length: length}
}

func (g *RandomGenerator) Next() string {
	var b strings.Builder
	b.Grow(g.length)
	b.WriteByte(byte('1' + rand.IntN(9)))
	for i := 1; i < g.length; i++ {
		b.WriteByte(byte('0' + rand.IntN(10)))
	}
	return b.String()
}

// SequenceGenerator devuelve los códigos dados en orden y luego repite el último.
// Útil en pruebas y en importaciones con códigos preasignados.
type SequenceGenerator struct {
	codes []string
	next  int
}

// NewSequenceGenerator construye el generador con la secuencia fija.
func NewSequenceGenerator(codes ...string) *SequenceGenerator {
	return &SequenceGenerator{codes: codes}
}

func (g *SequenceGenerator) Next() string {
	if len(g.codes) == 0 {
		return ""
	}
	if g.next >= len(g.codes) {
		return g.codes[len(g.codes)-1]
	}
	c := g.codes[g.next]
	g.next++
	return c
}
