package events

import "github.com/atomicstack/route-guide/internal/logging"

type CatalogTracer struct{}

var Catalog = CatalogTracer{}

func (CatalogTracer) Resolve(query, id string, err error) {
	payload := map[string]interface{}{"query": query, "id": id}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("catalog.resolve", payload)
}

func (CatalogTracer) Load(source string, routes int) {
	logging.Trace("catalog.load", map[string]interface{}{"source": source, "routes": routes})
}
