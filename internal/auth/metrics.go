package auth

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	verifierLocal  = "local"
	verifierRemote = "remote"

	outcomeSuccess     = "success"
	outcomeRejected    = "rejected"
	outcomeUnavailable = "unavailable"
)

var (
	verificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_verifications_total",
			Help: "Bearer token verifications by verifier and outcome.",
		},
		[]string{"verifier", "outcome"},
	)

	remoteLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "auth_remote_latency_seconds",
			Help:    "Round trip duration of calls to the delegated auth service.",
			Buckets: prometheus.DefBuckets,
		},
	)

	gateRejectionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_gate_rejections_total",
			Help: "Requests rejected by the role gate.",
		},
	)
)

func init() {
	prometheus.MustRegister(verificationsTotal, remoteLatency, gateRejectionsTotal)
}

func recordVerification(verifier, outcome string) {
	verificationsTotal.WithLabelValues(verifier, outcome).Inc()
}
