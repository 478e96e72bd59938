// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics counts claim submissions for Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds the submission counters on its own registry.
type Recorder struct {
	reg      *prometheus.Registry
	accepted *prometheus.CounterVec
	rejected *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		accepted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "claimdesk",
			Name:      "claims_submitted_total",
			Help:      "Claims accepted into the registry, by claim type.",
		}, []string{"type"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "claimdesk",
			Name:      "claim_submissions_rejected_total",
			Help:      "Submissions refused by validation, by failing field.",
		}, []string{"field"}),
	}
	r.reg.MustRegister(
		r.accepted,
		r.rejected,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ClaimAccepted implements registry.Observer.
func (r *Recorder) ClaimAccepted(claimType string) {
	r.accepted.WithLabelValues(claimType).Inc()
}

// ClaimRejected implements registry.Observer.
func (r *Recorder) ClaimRejected(field string) {
	r.rejected.WithLabelValues(field).Inc()
}

// Handler serves the recorder's registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer exposes the recorder's registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.reg
}
