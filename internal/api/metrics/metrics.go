// Package metrics defines the custom Prometheus metrics of the legal records
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register with the default registry on package init.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "legal_records"

// Entity label values.
const (
	EntityClient   = "client"
	EntityCaseFile = "case_file"
	EntityOther    = "other_document"
	EntityUser     = "user"
)

// ── Record metrics ────────────────────────────────────────────────────────────

// RecordsCreatedTotal counts records created through the API.
// Label:
//   - entity: client, case_file, other_document or user
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of records created, by entity.",
	},
	[]string{"entity"},
)

// RecordsDeletedTotal counts soft and hard deletes.
// Label:
//   - entity: client, case_file, other_document or user
var RecordsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_deleted_total",
		Help:      "Total number of records deleted, by entity.",
	},
	[]string{"entity"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "rejected" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Storage metrics ───────────────────────────────────────────────────────────

// DriveRequestsTotal counts calls to the Drive API.
// Labels:
//   - operation: find_folder, create_folder, list_children or delete
//   - result: "ok" or "error"
var DriveRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "drive_requests_total",
		Help:      "Total number of Drive API calls, by operation and result.",
	},
	[]string{"operation", "result"},
)

// DriveRequestDuration measures Drive API latency.
// Label:
//   - operation: find_folder, create_folder, list_children or delete
var DriveRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "drive_request_duration_seconds",
		Help:      "Duration of Drive API calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// DriveObserver records Drive calls into DriveRequestsTotal and DriveRequestDuration.
type DriveObserver struct{}

func (DriveObserver) ObserveDrive(operation string, elapsed time.Duration, err error) {
	DriveRequestDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	result := "ok"
	if err != nil {
		result = "error"
	}
	DriveRequestsTotal.WithLabelValues(operation, result).Inc()
}
