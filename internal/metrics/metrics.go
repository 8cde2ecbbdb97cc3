// Package metrics holds the business counters exported on /metrics. HTTP
// request metrics live in the middleware package.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	intakeSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_submissions_total",
			Help: "Total number of accepted intake submissions",
		},
		[]string{"destination", "form_type"},
	)

	intakeRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_rejections_total",
			Help: "Total number of intake submissions rejected before or during the write",
		},
		[]string{"destination", "reason"}, // validation, persistence
	)

	intakeReplaysTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_idempotent_replays_total",
			Help: "Total number of intake requests answered from an earlier Idempotency-Key",
		},
		[]string{"destination"},
	)

	adminSubmissionReadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_submission_reads_total",
			Help: "Total number of admin submission reads by outcome",
		},
		[]string{"outcome"}, // ok, unauthorized, forbidden, not_found, error
	)
)

// RecordSubmission counts one stored submission.
func RecordSubmission(destination, formType string) {
	intakeSubmissionsTotal.WithLabelValues(destination, formType).Inc()
}

// RecordRejection counts one refused submission.
func RecordRejection(destination, reason string) {
	intakeRejectionsTotal.WithLabelValues(destination, reason).Inc()
}

// RecordReplay counts one idempotent replay.
func RecordReplay(destination string) {
	intakeReplaysTotal.WithLabelValues(destination).Inc()
}

// RecordAdminRead counts one admin read attempt.
func RecordAdminRead(outcome string) {
	adminSubmissionReadsTotal.WithLabelValues(outcome).Inc()
}
