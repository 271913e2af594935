package observability

import "time"

// UpstreamTimer measures a single upstream API call, recording its duration
// and outcome when Done is called.
type UpstreamTimer struct {
	metrics  *Metrics
	provider string
	start    time.Time
}

// NewUpstreamTimer starts timing an upstream call for the given provider
// label.
func NewUpstreamTimer(m *Metrics, provider string) *UpstreamTimer {
	return &UpstreamTimer{metrics: m, provider: provider, start: time.Now()}
}

// Done records the call's duration and outcome.
func (t *UpstreamTimer) Done(success bool) {
	t.metrics.UpstreamDuration.WithLabelValues(t.provider).Observe(time.Since(t.start).Seconds())
	outcome := "error"
	if success {
		outcome = "success"
	}
	t.metrics.UpstreamRequests.WithLabelValues(t.provider, outcome).Inc()
}
