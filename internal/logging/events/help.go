package events

import "github.com/atomicstack/route-guide/internal/logging"

type HelpTracer struct{}

var Help = HelpTracer{}

func (HelpTracer) Toggle(visible bool) {
	logging.Trace("help.toggle", map[string]interface{}{"visible": visible})
}

func (HelpTracer) Suppressed(key string) {
	logging.Trace("help.suppressed", map[string]interface{}{"key": key})
}
