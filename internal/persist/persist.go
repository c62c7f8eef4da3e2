// Package persist es el adapter entre el estado del dashboard y el key-value store:
// colecciones completas serializadas como JSON bajo keys fijas.
//
// Persistencia best-effort: ni Load ni Save devuelven error. Un blob ausente o corrupto
// se reemplaza por el default del caller; una escritura fallida se loguea y se descarta.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pet-care-dashboard/internal/platform/logger"
	"pet-care-dashboard/internal/platform/metrics"
	"pet-care-dashboard/internal/ports/kv"
)

// Keys de las tres colecciones (mismos nombres que el localStorage de la versión web).
const (
	KeyPets          = "pets"
	KeyAppointments  = "appointments"
	KeyHealthRecords = "healthRecords"
)

type Adapter struct {
	store   kv.Store
	log     logger.Logger
	metrics *metrics.Recorder
	tracer  trace.Tracer
}

type Options struct {
	Logger  logger.Logger     // default: logger.Nop()
	Metrics *metrics.Recorder // opcional
}

func NewAdapter(store kv.Store, opts Options) *Adapter {
	l := opts.Logger
	if l == nil {
		l = logger.Nop()
	}
	return &Adapter{
		store:   store,
		log:     l.With(map[string]any{"component": "persist"}),
		metrics: opts.Metrics,
		tracer:  otel.Tracer("pet-care-dashboard/persist"),
	}
}

// Load lee key y la deserializa en T. Devuelve def si la key no existe,
// si el backend falla o si el JSON es inválido.
func Load[T any](ctx context.Context, a *Adapter, key string, def T) T {
	ctx, span := a.tracer.Start(ctx, "persist.load", trace.WithAttributes(attribute.String("kv.key", key)))
	defer span.End()

	raw, err := a.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			a.metrics.Store("load", key, metrics.ResultMissing)
			span.SetAttributes(attribute.String("persist.result", metrics.ResultMissing))
			return def
		}
		a.metrics.Store("load", key, metrics.ResultError)
		span.RecordError(err)
		span.SetStatus(codes.Error, "backend read failed")
		a.log.Warn("store read failed, using default", map[string]any{"key": key, "err": err})
		return def
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		a.metrics.Store("load", key, metrics.ResultCorrupt)
		span.RecordError(err)
		span.SetStatus(codes.Error, "corrupt payload")
		a.log.Warn("store payload is not valid json, using default", map[string]any{"key": key, "err": err, "bytes": len(raw)})
		return def
	}

	a.metrics.Store("load", key, metrics.ResultOK)
	span.SetAttributes(attribute.String("persist.result", metrics.ResultOK))
	return out
}

// Save serializa v y lo escribe bajo key. Los fallos se loguean y se descartan.
func (a *Adapter) Save(ctx context.Context, key string, v any) {
	ctx, span := a.tracer.Start(ctx, "persist.save", trace.WithAttributes(attribute.String("kv.key", key)))
	defer span.End()

	start := time.Now()
	defer func() { a.metrics.SaveDuration(key, time.Since(start)) }()

	b, err := json.Marshal(v)
	if err != nil {
		a.metrics.Store("save", key, metrics.ResultError)
		span.RecordError(err)
		span.SetStatus(codes.Error, "marshal failed")
		a.log.Error("store save dropped: marshal failed", map[string]any{"key": key, "err": err})
		return
	}

	if err := a.store.Set(ctx, key, b); err != nil {
		a.metrics.Store("save", key, metrics.ResultError)
		span.RecordError(err)
		span.SetStatus(codes.Error, "backend write failed")
		a.log.Error("store save dropped", map[string]any{"key": key, "err": err, "bytes": len(b)})
		return
	}

	a.metrics.Store("save", key, metrics.ResultOK)
	a.log.Debug("store saved", map[string]any{"key": key, "bytes": len(b)})
}

// Collection es una colección completa de T guardada bajo una key.
// Cada repositorio de dominio es una Collection.
type Collection[T any] struct {
	adapter *Adapter
	key     string
}

func NewCollection[T any](a *Adapter, key string) *Collection[T] {
	return &Collection[T]{adapter: a, key: key}
}

func (c *Collection[T]) Key() string {
	return c.key
}

// Load nunca devuelve nil: una colección ausente es una colección vacía.
func (c *Collection[T]) Load(ctx context.Context) []T {
	items := Load(ctx, c.adapter, c.key, []T{})
	if items == nil {
		// "null" guardado explícitamente
		items = []T{}
	}
	return items
}

func (c *Collection[T]) Save(ctx context.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.adapter.Save(ctx, c.key, items)
}
