package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	rowsParsed          *prometheus.CounterVec
	rowsSkipped         *prometheus.CounterVec
	ruleCacheLookups    *prometheus.CounterVec
	categorizerAttempts *prometheus.CounterVec
	conversionsTotal    *prometheus.CounterVec
	snapshotRows        *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		rowsParsed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_rows_parsed_total",
				Help: "Total number of statement rows converted into transactions",
			},
			[]string{"bank"},
		),
		rowsSkipped: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_rows_skipped_total",
				Help: "Total number of statement rows dropped during extraction",
			},
			[]string{"bank"},
		),
		ruleCacheLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "category_rule_cache_lookups_total",
				Help: "Category rule cache lookups by outcome",
			},
			[]string{"outcome"},
		),
		categorizerAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "categorizer_attempts_total",
				Help: "Remote categorizer attempts by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
		conversionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "currency_conversions_total",
				Help: "Total number of currency conversions performed",
			},
			[]string{"from", "to"},
		),
		snapshotRows: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_snapshot_rows_total",
				Help: "Exchange rate snapshot rows written by operation",
			},
			[]string{"operation"},
		),
	}
}

func (m *PrometheusMetrics) RowsParsed(bank string, count int) {
	m.rowsParsed.WithLabelValues(bank).Add(float64(count))
}

func (m *PrometheusMetrics) RowsSkipped(bank string, count int) {
	m.rowsSkipped.WithLabelValues(bank).Add(float64(count))
}

func (m *PrometheusMetrics) RuleCacheHit(count int) {
	m.ruleCacheLookups.WithLabelValues("hit").Add(float64(count))
}

func (m *PrometheusMetrics) RuleCacheMiss(count int) {
	m.ruleCacheLookups.WithLabelValues("miss").Add(float64(count))
}

func (m *PrometheusMetrics) CategorizerAttempt(provider, outcome string) {
	m.categorizerAttempts.WithLabelValues(provider, outcome).Inc()
}

func (m *PrometheusMetrics) ConversionPerformed(from, to string) {
	m.conversionsTotal.WithLabelValues(from, to).Inc()
}

func (m *PrometheusMetrics) SnapshotWritten(inserted, updated int) {
	m.snapshotRows.WithLabelValues("inserted").Add(float64(inserted))
	m.snapshotRows.WithLabelValues("updated").Add(float64(updated))
}

// NoopMetrics discards all recordings. Used by tests and the rates job
// where no scrape endpoint is exposed.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface { return &NoopMetrics{} }

func (NoopMetrics) RowsParsed(string, int)          {}
func (NoopMetrics) RowsSkipped(string, int)         {}
func (NoopMetrics) RuleCacheHit(int)                {}
func (NoopMetrics) RuleCacheMiss(int)               {}
func (NoopMetrics) CategorizerAttempt(string, string) {}
func (NoopMetrics) ConversionPerformed(string, string) {}
func (NoopMetrics) SnapshotWritten(int, int)        {}
