package metrics

import "time"

// RenderCompleted records a successful render of a template
func RenderCompleted(name string, duration time.Duration) {
	RendersTotal.WithLabelValues(name, "ok").Inc()
	RenderDuration.WithLabelValues(name).Observe(duration.Seconds())
}

// RenderFailed records a failed render of a template
func RenderFailed(name string) {
	RendersTotal.WithLabelValues(name, "error").Inc()
}

// HelperFailed records a template helper returning an error
func HelperFailed(helper, code string) {
	HelperErrorsTotal.WithLabelValues(helper, code).Inc()
}
