// Package metrics exposes the workflow counters scraped from /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder owns the counters. A nil *Recorder records nothing.
type Recorder struct {
	offersCreated prometheus.Counter
	otpEvents     *prometheus.CounterVec
	registry      *prometheus.Registry
}

// New registers the counters on a fresh registry.
func New() *Recorder {
	r := &Recorder{
		offersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_offers_created_total",
			Help: "Offers persisted by the composite create workflow.",
		}),
		otpEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "backoffice_otp_events_total",
			Help: "Login code events by account kind.",
		}, []string{"kind", "event"}),
		registry: prometheus.NewRegistry(),
	}
	r.registry.MustRegister(r.offersCreated, r.otpEvents)
	return r
}

// Registry is the gatherer served by the metrics endpoint.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) OfferCreated() {
	if r == nil {
		return
	}
	r.offersCreated.Inc()
}

// OTPEvent counts one login code event (issued, verified, expired, invalid,
// missing, rejected) for an account kind.
func (r *Recorder) OTPEvent(kind, event string) {
	if r == nil {
		return
	}
	r.otpEvents.WithLabelValues(kind, event).Inc()
}
