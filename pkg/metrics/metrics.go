// Package metrics exposes Prometheus counters for parse and ingest outcomes.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the instrument set for the ingest pipeline.
type Metrics struct {
	registry *prometheus.Registry

	// MessagesParsed counts parsed bank messages by resolved direction and
	// category.
	MessagesParsed *prometheus.CounterVec

	// AmountMissing counts parses where no currency-tagged amount was found.
	AmountMissing prometheus.Counter

	// TransactionsIngested counts transactions accepted into the ledger by
	// source (sms, scan, manual).
	TransactionsIngested *prometheus.CounterVec

	// IngestRejected counts ingestion attempts rejected during validation.
	IngestRejected prometheus.Counter
}

// New creates a metric set on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		MessagesParsed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "smsledger",
			Name:      "messages_parsed_total",
			Help:      "Bank messages parsed, by direction and category.",
		}, []string{"direction", "category"}),
		AmountMissing: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "smsledger",
			Name:      "amount_missing_total",
			Help:      "Parses that found no currency-tagged amount.",
		}),
		TransactionsIngested: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "smsledger",
			Name:      "transactions_ingested_total",
			Help:      "Transactions accepted into the ledger, by source.",
		}, []string{"source"}),
		IngestRejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "smsledger",
			Name:      "ingest_rejected_total",
			Help:      "Ingestion attempts rejected during validation.",
		}),
	}
}

// Handler returns the scrape endpoint for this metric set.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
