package state

import (
	"testing"

	store "github.com/atomicstack/route-guide/internal/state"
	"github.com/atomicstack/route-guide/internal/walkthrough"
	"pgregory.net/rapid"
)

func newTestNavigator() (*Navigator, store.ProgressStore) {
	a := routeWithChapters(0, 2)
	a.Name = "A"
	a.Prerequisites = []string{"B"}
	for c := range a.Chapters {
		for s := range a.Chapters[c].Steps {
			a.Chapters[c].Steps[s].ID = "A_" + a.Chapters[c].Steps[s].ID
		}
	}
	b := routeWithChapters(1, 1)
	b.Name = "B"
	empty := walkthrough.Route{Name: "Empty", Chapters: []walkthrough.Chapter{{Number: 1, Name: "nothing"}}}
	progress := store.NewProgressStore([]walkthrough.Route{a, b, empty})
	return NewNavigator(progress), progress
}

func TestNavigatorStartsOnRouteList(t *testing.T) {
	nav, _ := newTestNavigator()
	if nav.View().Screen != ScreenRouteSelection {
		t.Fatalf("expected route selection, got %s", nav.View().Screen)
	}
	if len(nav.Routes.Items) != 3 || nav.Routes.Items[1].ID != "B" {
		t.Fatalf("unexpected route items %#v", nav.Routes.Items)
	}
	if nav.Back() {
		t.Fatalf("expected back on route list to be a no-op")
	}
	if nav.Toggle() {
		t.Fatalf("expected toggle on route list to be a no-op")
	}
}

func TestNavigatorRouteListClamps(t *testing.T) {
	nav, _ := newTestNavigator()
	if nav.Apply(ActionMoveUp) {
		t.Fatalf("expected no wrap above first route")
	}
	nav.Apply(ActionMoveDown)
	nav.Apply(ActionMoveDown)
	if nav.Apply(ActionMoveDown) {
		t.Fatalf("expected no wrap below last route")
	}
	if nav.Routes.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", nav.Routes.Cursor)
	}
}

func TestNavigatorLockedRouteDoesNotOpen(t *testing.T) {
	nav, progress := newTestNavigator()
	if nav.Confirm() {
		t.Fatalf("expected locked route to stay closed")
	}
	if nav.View().Screen != ScreenRouteSelection {
		t.Fatalf("expected route selection, got %s", nav.View().Screen)
	}
	if _, ok := progress.ActiveRoute(); ok {
		t.Fatalf("expected no active route")
	}
}

func TestNavigatorOpenRouteAndStep(t *testing.T) {
	nav, progress := newTestNavigator()
	nav.MoveDown()
	if !nav.Confirm() {
		t.Fatalf("expected route B to open")
	}
	view := nav.View()
	if view.Screen != ScreenRouteDetails || view.Route != 1 {
		t.Fatalf("unexpected view %#v", view)
	}
	if idx, ok := progress.ActiveRoute(); !ok || idx != 1 {
		t.Fatalf("expected active route 1, got %d/%v", idx, ok)
	}
	if nav.Steps.Cursor != 1 {
		t.Fatalf("expected cursor on first step row, got %d", nav.Steps.Cursor)
	}

	nav.MoveDown()
	if nav.Steps.Cursor != 3 {
		t.Fatalf("expected header skipped to row 3, got %d", nav.Steps.Cursor)
	}
	if !nav.Confirm() {
		t.Fatalf("expected step to open")
	}
	view = nav.View()
	if view.Screen != ScreenStepDetails || view.Chapter != 1 || view.Step != 0 {
		t.Fatalf("unexpected view %#v", view)
	}
	step, ok := nav.OpenStep()
	if !ok || step.ID != "c1_s0" {
		t.Fatalf("expected c1_s0, got %#v/%v", step, ok)
	}
	if nav.Confirm() || nav.MoveDown() || nav.Toggle() {
		t.Fatalf("expected step details to ignore confirm, move and toggle")
	}

	if !nav.Back() {
		t.Fatalf("expected back to route details")
	}
	view = nav.View()
	if view.Screen != ScreenRouteDetails || view.Route != 1 {
		t.Fatalf("unexpected view %#v", view)
	}
	if nav.Steps.HasSelection() {
		t.Fatalf("expected cursor reset to unselected, got %d", nav.Steps.Cursor)
	}
	if nav.Confirm() {
		t.Fatalf("expected confirm without selection to be a no-op")
	}

	if !nav.Back() {
		t.Fatalf("expected back to route list")
	}
	if nav.View().Screen != ScreenRouteSelection || nav.Steps != nil {
		t.Fatalf("expected display map discarded on route list")
	}
	if nav.Routes.Cursor != 1 {
		t.Fatalf("expected route cursor preserved, got %d", nav.Routes.Cursor)
	}
}

func TestNavigatorConfirmOnHeaderIsNoOp(t *testing.T) {
	nav, _ := newTestNavigator()
	nav.MoveDown()
	nav.Confirm()
	nav.Steps.Cursor = 2
	if nav.Confirm() {
		t.Fatalf("expected header confirm to be a no-op")
	}
	if nav.Toggle() {
		t.Fatalf("expected header toggle to be a no-op")
	}
	if nav.View().Screen != ScreenRouteDetails {
		t.Fatalf("expected to remain on route details")
	}
}

func TestNavigatorRouteWithoutSteps(t *testing.T) {
	nav, _ := newTestNavigator()
	nav.MoveDown()
	nav.MoveDown()
	if !nav.Confirm() {
		t.Fatalf("expected empty route to open")
	}
	if nav.Steps.HasSelection() {
		t.Fatalf("expected no selection, got %d", nav.Steps.Cursor)
	}
	if nav.MoveDown() || nav.MoveUp() || nav.Confirm() || nav.Toggle() {
		t.Fatalf("expected every action but back to be a no-op")
	}
}

func TestNavigatorToggleUnlocksDependent(t *testing.T) {
	nav, progress := newTestNavigator()
	nav.MoveDown()
	nav.Confirm()
	if !nav.Toggle() {
		t.Fatalf("expected toggle")
	}
	if !progress.IsStepCompleted("c0_s0") {
		t.Fatalf("expected c0_s0 completed")
	}
	step, _ := nav.HighlightedStep()
	if !step.Completed {
		t.Fatalf("expected cached flag to follow")
	}
	nav.MoveDown()
	nav.Toggle()
	if !progress.IsRouteUnlocked(0) {
		t.Fatalf("expected A unlocked once B is complete")
	}
	nav.Back()
	nav.MoveUp()
	if !nav.Confirm() {
		t.Fatalf("expected A to open once unlocked")
	}
	if nav.Steps.Len() != 4 || nav.Steps.Cursor != 2 {
		t.Fatalf("expected 4 rows with cursor on row 2, got %d/%d", nav.Steps.Len(), nav.Steps.Cursor)
	}
}

func TestNavigatorToggleTwiceRestores(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		nav, progress := newTestNavigator()
		nav.MoveDown()
		nav.Confirm()
		moves := rapid.IntRange(0, 5).Draw(rt, "moves")
		for i := 0; i < moves; i++ {
			nav.MoveDown()
		}
		before, ok := nav.HighlightedStep()
		if !ok {
			rt.Fatalf("expected highlighted step")
		}
		nav.Toggle()
		nav.Toggle()
		after, _ := nav.HighlightedStep()
		if after.Completed != before.Completed {
			rt.Fatalf("expected flag restored to %v", before.Completed)
		}
		if progress.IsStepCompleted(after.ID) != after.Completed {
			rt.Fatalf("mapping and cached flag diverged for %s", after.ID)
		}
	})
}
