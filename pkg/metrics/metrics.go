// Package metrics holds the application's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// NotificationsSent counts registration notification emails handed to the
	// mail transport, labeled by outcome ("sent", "skipped", "failed").
	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "adminops",
		Subsystem: "notifier",
		Name:      "notifications_total",
		Help:      "Registration notification emails by outcome.",
	}, []string{"outcome"})

	// NotificationRecipients tracks how many admins were addressed per
	// successfully sent notification.
	NotificationRecipients = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "adminops",
		Subsystem: "notifier",
		Name:      "recipients_per_notification",
		Help:      "Number of admin recipients per sent notification.",
		Buckets:   prometheus.LinearBuckets(1, 1, 10),
	})

	// AccountsDeleted counts completed account deletions.
	AccountsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "adminops",
		Subsystem: "deleter",
		Name:      "accounts_deleted_total",
		Help:      "Successfully completed account deletions.",
	})

	// PendingScanRequestsDeleted counts pending scan requests removed as part
	// of account deletions.
	PendingScanRequestsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "adminops",
		Subsystem: "deleter",
		Name:      "pending_scan_requests_deleted_total",
		Help:      "Pending scan requests removed during account deletions.",
	})
)
