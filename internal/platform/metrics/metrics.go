package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	SkillTestsTotal   *prometheus.CounterVec
	RollValue         prometheus.Histogram
	EventsRecorded    prometheus.Counter
	EventSinkFailures prometheus.Counter
	ExecuteDuration   prometheus.Histogram
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		SkillTestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "edaemon_skill_tests_total",
			Help: "Total number of skill tests executed, labeled by outcome",
		}, []string{"outcome"}),
		RollValue: promauto.NewHistogram(prometheus.HistogramOpts{
			Name: "edaemon_roll_value",
			Help: "Distribution of final roll values after modifiers",
			// Modifiers can push values outside [1,100]; keep headroom.
			Buckets: prometheus.LinearBuckets(-20, 10, 15),
		}),
		EventsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "edaemon_domain_events_recorded_total",
			Help: "Total number of domain events recorded by the engine",
		}),
		EventSinkFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "edaemon_event_sink_failures_total",
			Help: "Total number of event sink emissions that failed",
		}),
		ExecuteDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "edaemon_skill_test_duration_seconds",
			Help:    "Wall-clock duration of skill test execution",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ObserveSkillTest records one completed skill test.
func (m *Metrics) ObserveSkillTest(success bool, rollValue int, elapsed time.Duration) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	m.SkillTestsTotal.WithLabelValues(outcome).Inc()
	m.RollValue.Observe(float64(rollValue))
	m.ExecuteDuration.Observe(elapsed.Seconds())
}

// IncrementEventsRecorded counts one recorded domain event.
func (m *Metrics) IncrementEventsRecorded() {
	m.EventsRecorded.Inc()
}

// IncrementEventSinkFailures counts one failed emission to the event sink.
func (m *Metrics) IncrementEventSinkFailures() {
	m.EventSinkFailures.Inc()
}
