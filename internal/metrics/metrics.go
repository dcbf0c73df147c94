// Package metrics exports counters for scheduling and installation events.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "send_it_later"

// Schedule outcomes.
const (
	OutcomeScheduled    = "scheduled"
	OutcomeInvalidTime  = "invalid_time"
	OutcomeNotInChannel = "not_in_channel"
	OutcomeNoToken      = "no_user_token"
	OutcomeError        = "error"
)

// Recorder counts what the event handlers did.
type Recorder struct {
	schedules     *prometheus.CounterVec
	cancellations prometheus.Counter
	installations prometheus.Counter
	revocations   prometheus.Counter
	uninstalls    prometheus.Counter
	events        *prometheus.CounterVec
}

// NewRecorder registers the counters with reg, or the default registerer when nil.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &Recorder{
		schedules: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schedule_requests_total",
			Help:      "Schedule modal submissions by outcome.",
		}, []string{"outcome"}),
		cancellations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cancellations_total",
			Help:      "Scheduled messages deleted from the Home tab.",
		}),
		installations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "installations_total",
			Help:      "Completed OAuth installs.",
		}),
		revocations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revoked_user_tokens_total",
			Help:      "User tokens removed after tokens_revoked events.",
		}),
		uninstalls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uninstalls_total",
			Help:      "Teams torn down after app_uninstalled events.",
		}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inbound_events_total",
			Help:      "Inbound events and interactions by kind and result.",
		}, []string{"kind", "result"}),
	}

	for _, c := range []prometheus.Collector{r.schedules, r.cancellations, r.installations, r.revocations, r.uninstalls, r.events} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics collector: %w", err)
		}
	}

	return r, nil
}

func (r *Recorder) ScheduleRequest(outcome string) {
	r.schedules.WithLabelValues(outcome).Inc()
}

func (r *Recorder) Cancelled() {
	r.cancellations.Inc()
}

func (r *Recorder) Installed() {
	r.installations.Inc()
}

func (r *Recorder) TokensRevoked(n int) {
	r.revocations.Add(float64(n))
}

func (r *Recorder) Uninstalled() {
	r.uninstalls.Inc()
}

// Event counts one handled inbound event; err decides the result label.
func (r *Recorder) Event(kind string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.events.WithLabelValues(kind, result).Inc()
}
