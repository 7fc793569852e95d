package wallet

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetricsCollector exports wallet metrics via the default
// Prometheus registry, served on /metrics.
type PrometheusMetricsCollector struct {
	transactions *prometheus.CounterVec
	volume       *prometheus.CounterVec
	errors       *prometheus.CounterVec
	cacheHits    prometheus.Counter
	cacheMisses  prometheus.Counter
}

func NewPrometheusMetricsCollector() *PrometheusMetricsCollector {
	return &PrometheusMetricsCollector{
		transactions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_transactions_total",
			Help: "Wallet transactions by type.",
		}, []string{"type"}),
		volume: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_transaction_volume_cents",
			Help: "Transacted volume in cents by type.",
		}, []string{"type"}),
		errors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_errors_total",
			Help: "Wallet operation errors.",
		}, []string{"operation"}),
		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wallet_cache_hits_total",
			Help: "Wallet cache hits.",
		}),
		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wallet_cache_misses_total",
			Help: "Wallet cache misses.",
		}),
	}
}

func (p *PrometheusMetricsCollector) RecordTransaction(txType string, amountCents int64) {
	p.transactions.WithLabelValues(txType).Inc()
	p.volume.WithLabelValues(txType).Add(float64(amountCents))
}

func (p *PrometheusMetricsCollector) RecordError(operation, errType string) {
	p.errors.WithLabelValues(operation).Inc()
}

func (p *PrometheusMetricsCollector) RecordCacheHit(string)  { p.cacheHits.Inc() }
func (p *PrometheusMetricsCollector) RecordCacheMiss(string) { p.cacheMisses.Inc() }
