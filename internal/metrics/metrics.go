// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder counts form recomputes and evaluate calls.
type Recorder struct {
	Recomputes *prometheus.CounterVec
	Evaluates  prometheus.Counter
	Sessions   prometheus.Counter
}

// NewRecorder creates the collectors and registers them on reg (default registerer when nil).
func NewRecorder(namespace string, reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &Recorder{
		Recomputes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_recomputes_total",
			Help:      "Count of form recomputes by the input that triggered them.",
		}, []string{"trigger"}),
		Evaluates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stateless_evaluations_total",
			Help:      "Count of stateless evaluate requests.",
		}),
		Sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_created_total",
			Help:      "Count of form sessions handed out.",
		}),
	}
	reg.MustRegister(r.Recomputes, r.Evaluates, r.Sessions)
	return r
}

func (r *Recorder) Recompute(trigger string) {
	r.Recomputes.WithLabelValues(trigger).Inc()
}

func (r *Recorder) Evaluate() {
	r.Evaluates.Inc()
}

func (r *Recorder) SessionCreated() {
	r.Sessions.Inc()
}
