package events

import "github.com/atomicstack/route-guide/internal/logging"

type ProgressTracer struct{}

var Progress = ProgressTracer{}

func (ProgressTracer) Toggle(route, stepID string, completed bool, percent float64) {
	logging.Trace("progress.toggle", map[string]interface{}{
		"route":     route,
		"step":      stepID,
		"completed": completed,
		"percent":   percent,
	})
}

// Unlocked records routes that became selectable after a toggle.
func (ProgressTracer) Unlocked(routes []string) {
	logging.Trace("progress.unlocked", map[string]interface{}{"routes": routes})
}
