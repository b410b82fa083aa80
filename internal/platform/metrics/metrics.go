// Package metrics — счётчики Prometheus для HTTP, корзины, заказов и каталога.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "coffee_miniapp"

// Исходы отправки заказа.
const (
	OutcomeSubmitted = "submitted"
	OutcomeRejected  = "rejected"
	OutcomeAborted   = "aborted"
	OutcomeFailed    = "failed"
)

// Metrics — собственный реестр на экземпляр. Нулевой *Metrics ничего не пишет.
type Metrics struct {
	Registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	orders        *prometheus.CounterVec
	cartMutations *prometheus.CounterVec
	catalogLoads  *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled.",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 10),
			},
			[]string{"method", "path"},
		),
		orders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "orders",
				Name:      "attempts_total",
				Help:      "Order submission attempts by outcome.",
			},
			[]string{"outcome"},
		),
		cartMutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cart",
				Name:      "mutations_total",
				Help:      "Cart mutations by operation and result.",
			},
			[]string{"op", "result"},
		),
		catalogLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "catalog",
				Name:      "loads_total",
				Help:      "Catalog load attempts by result.",
			},
			[]string{"result"},
		),
	}
	m.Registry.MustRegister(m.httpRequests, m.httpDuration, m.orders, m.cartMutations, m.catalogLoads)
	return m
}

func (m *Metrics) ObserveHTTP(method, path string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

func (m *Metrics) OrderOutcome(outcome string) {
	if m == nil {
		return
	}
	m.orders.WithLabelValues(outcome).Inc()
}

// CartMutation — result: "accepted", "noop" или "rejected".
func (m *Metrics) CartMutation(op, result string) {
	if m == nil {
		return
	}
	m.cartMutations.WithLabelValues(op, result).Inc()
}

func (m *Metrics) CatalogLoad(ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	m.catalogLoads.WithLabelValues(result).Inc()
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
