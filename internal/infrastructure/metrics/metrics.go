package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the application's Prometheus metrics. HTTP-level
// metrics live in the HTTP middleware.
type Metrics struct {
	// Ledger metrics
	RecordsWritten *prometheus.CounterVec
	RecordsDeleted *prometheus.CounterVec
	BalanceReads   prometheus.Counter

	// Change notification metrics
	ChangeEventsPublished *prometheus.CounterVec
	ChangeEventsReceived  prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		RecordsWritten: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "housetab_records_written_total",
				Help: "Total ledger records created or updated, by entity and action",
			},
			[]string{"entity", "action"},
		),
		RecordsDeleted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "housetab_records_deleted_total",
				Help: "Total ledger records deleted, by entity",
			},
			[]string{"entity"},
		),
		BalanceReads: promauto.NewCounter(prometheus.CounterOpts{
			Name: "housetab_balance_reads_total",
			Help: "Total balance overview computations",
		}),

		ChangeEventsPublished: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "housetab_change_events_published_total",
				Help: "Total change events published, by entity",
			},
			[]string{"entity"},
		),
		ChangeEventsReceived: promauto.NewCounter(prometheus.CounterOpts{
			Name: "housetab_change_events_received_total",
			Help: "Total change events received by the listener",
		}),
	}
}
