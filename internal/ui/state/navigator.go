package state

import "github.com/atomicstack/route-guide/internal/walkthrough"

// Screen identifies which of the three views is active.
type Screen int

const (
	ScreenRouteSelection Screen = iota
	ScreenRouteDetails
	ScreenStepDetails
)

func (s Screen) String() string {
	switch s {
	case ScreenRouteDetails:
		return "route-details"
	case ScreenStepDetails:
		return "step-details"
	default:
		return "route-selection"
	}
}

// View is the active screen plus the indices it is opened on. Route is set on
// the detail screens; Chapter and Step only on ScreenStepDetails.
type View struct {
	Screen  Screen
	Route   int
	Chapter int
	Step    int
}

// Action is a navigation input.
type Action int

const (
	ActionBack Action = iota
	ActionConfirm
	ActionMoveUp
	ActionMoveDown
	ActionToggle
)

func (a Action) String() string {
	switch a {
	case ActionBack:
		return "back"
	case ActionConfirm:
		return "confirm"
	case ActionMoveUp:
		return "move-up"
	case ActionMoveDown:
		return "move-down"
	case ActionToggle:
		return "toggle"
	default:
		return "unknown"
	}
}

// Progress is the subset of the progress store the navigator drives.
type Progress interface {
	RouteCount() int
	Route(idx int) (walkthrough.Route, bool)
	SetActiveRoute(idx int) bool
	SetStepCompletion(stepID string, completed bool)
	IsRouteUnlocked(idx int) bool
}

// Navigator is the view-state machine over route list, route details and
// step details. Every operation reports whether anything changed; invalid
// positions leave state untouched.
type Navigator struct {
	progress Progress
	view     View

	Routes *Level
	Steps  *DisplayMap
}

// NewNavigator starts on the route list with the first route highlighted.
func NewNavigator(progress Progress) *Navigator {
	items := make([]Item, 0, progress.RouteCount())
	for i := 0; i < progress.RouteCount(); i++ {
		route, ok := progress.Route(i)
		if !ok {
			continue
		}
		items = append(items, Item{ID: route.Name, Label: route.Name})
	}
	return &Navigator{
		progress: progress,
		view:     View{Screen: ScreenRouteSelection},
		Routes:   NewLevel("routes", "Routes", items),
	}
}

// View returns the active view.
func (n *Navigator) View() View {
	return n.view
}

// Apply dispatches a single action.
func (n *Navigator) Apply(action Action) bool {
	switch action {
	case ActionBack:
		return n.Back()
	case ActionConfirm:
		return n.Confirm()
	case ActionMoveUp:
		return n.MoveUp()
	case ActionMoveDown:
		return n.MoveDown()
	case ActionToggle:
		return n.Toggle()
	}
	return false
}

// Back leaves the current screen. It is a no-op on the route list.
func (n *Navigator) Back() bool {
	switch n.view.Screen {
	case ScreenRouteDetails:
		n.view = View{Screen: ScreenRouteSelection}
		n.Steps = nil
		return true
	case ScreenStepDetails:
		n.view = View{Screen: ScreenRouteDetails, Route: n.view.Route}
		if n.Steps != nil {
			n.Steps.Unselect()
		}
		return true
	}
	return false
}

// Confirm opens the highlighted route or step. Locked routes and chapter
// headers do not open.
func (n *Navigator) Confirm() bool {
	switch n.view.Screen {
	case ScreenRouteSelection:
		idx := n.Routes.Cursor
		if idx < 0 || idx >= n.progress.RouteCount() {
			return false
		}
		if !n.progress.IsRouteUnlocked(idx) {
			return false
		}
		route, ok := n.progress.Route(idx)
		if !ok || !n.progress.SetActiveRoute(idx) {
			return false
		}
		n.view = View{Screen: ScreenRouteDetails, Route: idx}
		n.Steps = BuildDisplayMap(route)
		n.Steps.SelectFirst()
		return true
	case ScreenRouteDetails:
		row, ok := n.currentRow()
		if !ok {
			return false
		}
		n.view = View{
			Screen:  ScreenStepDetails,
			Route:   n.view.Route,
			Chapter: row.Chapter,
			Step:    row.Step,
		}
		return true
	}
	return false
}

// MoveUp moves the cursor on the list screens. The route list clamps; the
// route-detail list wraps and skips headers.
func (n *Navigator) MoveUp() bool {
	switch n.view.Screen {
	case ScreenRouteSelection:
		return n.Routes.MoveCursorUp()
	case ScreenRouteDetails:
		if n.Steps == nil {
			return false
		}
		return n.Steps.MoveUp()
	}
	return false
}

// MoveDown is the downward counterpart of MoveUp.
func (n *Navigator) MoveDown() bool {
	switch n.view.Screen {
	case ScreenRouteSelection:
		return n.Routes.MoveCursorDown()
	case ScreenRouteDetails:
		if n.Steps == nil {
			return false
		}
		return n.Steps.MoveDown()
	}
	return false
}

// Toggle flips completion of the highlighted step through the progress store.
func (n *Navigator) Toggle() bool {
	step, ok := n.HighlightedStep()
	if !ok {
		return false
	}
	n.progress.SetStepCompletion(step.ID, !step.Completed)
	return true
}

// HighlightedStep returns the step under the route-detail cursor.
func (n *Navigator) HighlightedStep() (walkthrough.Step, bool) {
	if n.view.Screen != ScreenRouteDetails {
		return walkthrough.Step{}, false
	}
	row, ok := n.currentRow()
	if !ok {
		return walkthrough.Step{}, false
	}
	route, ok := n.progress.Route(n.view.Route)
	if !ok {
		return walkthrough.Step{}, false
	}
	return route.Step(row.Chapter, row.Step)
}

// OpenStep returns the step shown on the step-detail screen.
func (n *Navigator) OpenStep() (walkthrough.Step, bool) {
	if n.view.Screen != ScreenStepDetails {
		return walkthrough.Step{}, false
	}
	route, ok := n.progress.Route(n.view.Route)
	if !ok {
		return walkthrough.Step{}, false
	}
	return route.Step(n.view.Chapter, n.view.Step)
}

func (n *Navigator) currentRow() (StepRow, bool) {
	if n.Steps == nil {
		return StepRow{}, false
	}
	return n.Steps.Current()
}
