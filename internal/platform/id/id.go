package id

import (
	"sync"
	"time"
)

// Generator entrega identificadores int64 estrictamente crecientes.
// Parte del reloj en milisegundos (mismo formato que los ids guardados por la versión web)
// pero nunca repite aunque se pidan varios en el mismo milisegundo.
type Generator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorWithClock permite fijar el reloj (tests).
func NewGeneratorWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

func (g *Generator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	next := g.now().UnixMilli()
	if next <= g.last {
		next = g.last + 1
	}
	g.last = next
	return next
}

// Observe sube el piso con un id ya existente (p.ej. cargado del store).
func (g *Generator) Observe(existing int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if existing > g.last {
		g.last = existing
	}
}
