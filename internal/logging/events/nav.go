package events

import "github.com/atomicstack/route-guide/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

// Screen records a transition between views.
func (NavTracer) Screen(action, from, to string, route int) {
	logging.Trace("nav.screen", map[string]interface{}{
		"action": action,
		"from":   from,
		"to":     to,
		"route":  route,
	})
}

func (NavTracer) Cursor(screen string, cursor int) {
	logging.Trace("nav.cursor", map[string]interface{}{"screen": screen, "cursor": cursor})
}

// Blocked records an attempt to open a locked route.
func (NavTracer) Blocked(route string, missing []string) {
	logging.Trace("nav.blocked", map[string]interface{}{"route": route, "missing": missing})
}
