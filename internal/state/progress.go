package state

import "github.com/atomicstack/route-guide/internal/walkthrough"

// RouteStatus summarises a route for the route list.
type RouteStatus int

const (
	StatusEmpty RouteStatus = iota
	StatusPartial
	StatusComplete
	StatusLocked
)

func (s RouteStatus) String() string {
	switch s {
	case StatusPartial:
		return "partial"
	case StatusComplete:
		return "complete"
	case StatusLocked:
		return "locked"
	default:
		return "empty"
	}
}

// ProgressStore owns the walkthrough routes and per-step completion. The
// identifier-keyed progress map is authoritative; each step's Completed flag
// on the active route mirrors it.
type ProgressStore interface {
	RouteCount() int
	Route(idx int) (walkthrough.Route, bool)
	ActiveRoute() (int, bool)
	SetActiveRoute(idx int) bool
	SetStepCompletion(stepID string, completed bool)
	IsStepCompleted(stepID string) bool
	CompletionPercentage(routeIdx int) float64
	IsRouteUnlocked(routeIdx int) bool
	MissingPrerequisites(routeIdx int) []string
	Status(routeIdx int) RouteStatus
}

type progressStore struct {
	routes   []walkthrough.Route
	active   int
	progress map[string]bool
}

// NewProgressStore builds a store over a private copy of routes. No route is
// active initially.
func NewProgressStore(routes []walkthrough.Route) ProgressStore {
	return &progressStore{
		routes:   walkthrough.CloneRoutes(routes),
		active:   -1,
		progress: make(map[string]bool),
	}
}

func (s *progressStore) RouteCount() int {
	return len(s.routes)
}

func (s *progressStore) Route(idx int) (walkthrough.Route, bool) {
	if idx < 0 || idx >= len(s.routes) {
		return walkthrough.Route{}, false
	}
	return s.routes[idx].Clone(), true
}

func (s *progressStore) ActiveRoute() (int, bool) {
	if s.active < 0 || s.active >= len(s.routes) {
		return -1, false
	}
	return s.active, true
}

func (s *progressStore) SetActiveRoute(idx int) bool {
	if idx < 0 || idx >= len(s.routes) {
		return false
	}
	s.active = idx
	return true
}

// SetStepCompletion records completion for stepID and mirrors it onto the
// active route's cached flag. Inactive routes are never searched.
func (s *progressStore) SetStepCompletion(stepID string, completed bool) {
	s.progress[stepID] = completed
	idx, ok := s.ActiveRoute()
	if !ok {
		return
	}
	route := &s.routes[idx]
	for c := range route.Chapters {
		steps := route.Chapters[c].Steps
		for i := range steps {
			if steps[i].ID == stepID {
				steps[i].Completed = completed
				return
			}
		}
	}
}

func (s *progressStore) IsStepCompleted(stepID string) bool {
	return s.progress[stepID]
}

func (s *progressStore) CompletionPercentage(routeIdx int) float64 {
	if routeIdx < 0 || routeIdx >= len(s.routes) {
		return 0
	}
	route := s.routes[routeIdx]
	total := route.StepCount()
	if total == 0 {
		return 0
	}
	return float64(route.CompletedCount()) / float64(total) * 100
}

func (s *progressStore) IsRouteUnlocked(routeIdx int) bool {
	if routeIdx < 0 || routeIdx >= len(s.routes) {
		return false
	}
	return len(s.MissingPrerequisites(routeIdx)) == 0
}

// MissingPrerequisites lists prerequisite names that are not yet at 100%,
// including names that match no route.
func (s *progressStore) MissingPrerequisites(routeIdx int) []string {
	if routeIdx < 0 || routeIdx >= len(s.routes) {
		return nil
	}
	var missing []string
	for _, name := range s.routes[routeIdx].Prerequisites {
		idx := s.indexOf(name)
		if idx < 0 || s.CompletionPercentage(idx) < 100 {
			missing = append(missing, name)
		}
	}
	return missing
}

func (s *progressStore) Status(routeIdx int) RouteStatus {
	if !s.IsRouteUnlocked(routeIdx) {
		return StatusLocked
	}
	pct := s.CompletionPercentage(routeIdx)
	switch {
	case pct >= 100:
		return StatusComplete
	case pct > 0:
		return StatusPartial
	default:
		return StatusEmpty
	}
}

func (s *progressStore) indexOf(name string) int {
	for i, r := range s.routes {
		if r.Name == name {
			return i
		}
	}
	return -1
}
