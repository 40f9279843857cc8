// Package metrics defines and registers all custom Prometheus metrics for the
// admin API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "admin"

// Values for the "result" label of LoginAttemptsTotal.
const (
	LoginSuccess            = "success"
	LoginInvalidCredentials = "invalid_credentials"
	LoginUserNotFound       = "user_not_found"
	LoginThrottled          = "throttled"
)

// LoginAttemptsTotal counts authentication attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "user_not_found", "throttled"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// SessionBuildDuration measures how long a successful login takes end-to-end:
// credential lookup, password verification, permission-tree assembly, signing.
var SessionBuildDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "session_build_duration_seconds",
		Help:      "Duration of successful login handling from receipt to payload.",
		Buckets:   prometheus.DefBuckets,
	},
)

// AuditWriteFailuresTotal counts audit records whose persistence failed.
// These failures never fail the login flow; the counter is how they stay visible.
var AuditWriteFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_write_failures_total",
		Help:      "Total number of audit-login records that failed to persist.",
	},
)

// AuditDroppedTotal counts audit records dropped because a writer shard was full.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Total number of audit-login records dropped due to a full queue.",
	},
)

// AuditQueueDepth tracks the number of records waiting in each writer shard.
// Label:
//   - worker_id: numeric shard index (e.g. "0", "1", ...)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit-login records pending in each writer shard.",
	},
	[]string{"worker_id"},
)
