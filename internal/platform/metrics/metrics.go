package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	CreditsIssued    prometheus.Counter
	CreditsRevoked   prometheus.Counter
	LimitRejections  prometheus.Counter
	PartialSuccesses prometheus.Counter
	UpstreamErrors   prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		CreditsIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "salescredit_credits_issued_total",
			Help: "Total number of credits issued.",
		}),
		CreditsRevoked: promauto.NewCounter(prometheus.CounterOpts{
			Name: "salescredit_credits_revoked_total",
			Help: "Total number of credits revoked.",
		}),
		LimitRejections: promauto.NewCounter(prometheus.CounterOpts{
			Name: "salescredit_limit_rejections_total",
			Help: "Total number of issuance attempts rejected by the salesman limit.",
		}),
		PartialSuccesses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "salescredit_partial_successes_total",
			Help: "Total number of operations whose local write succeeded but remote status update failed.",
		}),
		UpstreamErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "salescredit_upstream_errors_total",
			Help: "Total number of failed upstream service calls.",
		}),
	}
}

func (m *Metrics) IncrementCreditsIssued() {
	if m != nil {
		m.CreditsIssued.Inc()
	}
}

func (m *Metrics) IncrementCreditsRevoked() {
	if m != nil {
		m.CreditsRevoked.Inc()
	}
}

func (m *Metrics) IncrementLimitRejections() {
	if m != nil {
		m.LimitRejections.Inc()
	}
}

func (m *Metrics) IncrementPartialSuccesses() {
	if m != nil {
		m.PartialSuccesses.Inc()
	}
}

func (m *Metrics) IncrementUpstreamErrors() {
	if m != nil {
		m.UpstreamErrors.Inc()
	}
}
