package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultados de una operación del store.
const (
	ResultOK      = "ok"
	ResultMissing = "missing"
	ResultCorrupt = "corrupt"
	ResultError   = "error"
)

// Recorder registra métricas del dashboard en un registry propio (no el global).
type Recorder struct {
	registry  *prometheus.Registry
	storeOps  *prometheus.CounterVec
	saveTime  *prometheus.HistogramVec
	mutations *prometheus.CounterVec
}

func New() *Recorder {
	reg := prometheus.NewRegistry()

	r := &Recorder{
		registry: reg,
		storeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petcare",
			Name:      "store_operations_total",
			Help:      "Store loads and saves by key and result.",
		}, []string{"op", "key", "result"}),
		saveTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "petcare",
			Name:      "store_save_seconds",
			Help:      "Latency of full-collection saves.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"key"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petcare",
			Name:      "mutations_total",
			Help:      "Domain mutations by operation and outcome.",
		}, []string{"op", "outcome"}),
	}

	reg.MustRegister(
		r.storeOps,
		r.saveTime,
		r.mutations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Store cuenta una operación del store. Nil-safe.
func (r *Recorder) Store(op, key, result string) {
	if r == nil {
		return
	}
	r.storeOps.WithLabelValues(op, key, result).Inc()
}

func (r *Recorder) SaveDuration(key string, d time.Duration) {
	if r == nil {
		return
	}
	r.saveTime.WithLabelValues(key).Observe(d.Seconds())
}

// Mutation cuenta una mutación de dominio (outcome: ok, invalid, not_found).
func (r *Recorder) Mutation(op, outcome string) {
	if r == nil {
		return
	}
	r.mutations.WithLabelValues(op, outcome).Inc()
}

// Handler expone /metrics.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
