package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/route-guide/internal/logging/events"
	uistate "github.com/atomicstack/route-guide/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.showHelp {
		return m.handleHelpKey(keyMsg)
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		events.App.Quit(m.nav.View().Screen.String())
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.showHelp = true
		events.Help.Toggle(true)
	case key.Matches(keyMsg, m.keys.Back):
		m.apply(uistate.ActionBack)
	case key.Matches(keyMsg, m.keys.Confirm):
		m.handleConfirm()
	case key.Matches(keyMsg, m.keys.Up):
		m.apply(uistate.ActionMoveUp)
	case key.Matches(keyMsg, m.keys.Down):
		m.apply(uistate.ActionMoveDown)
	case key.Matches(keyMsg, m.keys.Toggle):
		m.handleToggle()
	}
	return nil
}

// handleHelpKey closes the overlay on help or back and swallows everything
// else, quit included.
func (m *Model) handleHelpKey(keyMsg tea.KeyMsg) tea.Cmd {
	if key.Matches(keyMsg, m.keys.Help, m.keys.Back) {
		m.showHelp = false
		events.Help.Toggle(false)
		return nil
	}
	events.Help.Suppressed(keyMsg.String())
	return nil
}

func (m *Model) apply(action uistate.Action) bool {
	before := m.nav.View()
	if !m.nav.Apply(action) {
		return false
	}
	after := m.nav.View()
	if before.Screen != after.Screen {
		events.Nav.Screen(action.String(), before.Screen.String(), after.Screen.String(), after.Route)
		m.forceClearInfo()
	}
	m.syncViewport()
	if action == uistate.ActionMoveUp || action == uistate.ActionMoveDown {
		if cursor, ok := m.cursor(); ok {
			events.Nav.Cursor(after.Screen.String(), cursor)
		}
	}
	return true
}

func (m *Model) handleConfirm() {
	if m.apply(uistate.ActionConfirm) {
		return
	}
	if m.nav.View().Screen != uistate.ScreenRouteSelection {
		return
	}
	idx := m.nav.Routes.Cursor
	if m.progress.IsRouteUnlocked(idx) {
		return
	}
	item, ok := m.nav.Routes.Selected()
	if !ok {
		return
	}
	missing := m.progress.MissingPrerequisites(idx)
	events.Nav.Blocked(item.ID, missing)
	m.setInfo(fmt.Sprintf("%s is locked: complete %s first", item.Label, strings.Join(missing, ", ")))
}

func (m *Model) handleToggle() {
	step, ok := m.nav.HighlightedStep()
	if !ok {
		return
	}
	route := m.nav.View().Route
	locked := m.lockedRoutes()
	if !m.apply(uistate.ActionToggle) {
		return
	}
	events.Progress.Toggle(m.routeLabel(route), step.ID, !step.Completed, m.progress.CompletionPercentage(route))

	var unlocked []string
	for idx := range m.nav.Routes.Items {
		if _, was := locked[idx]; was && m.progress.IsRouteUnlocked(idx) {
			unlocked = append(unlocked, m.routeLabel(idx))
		}
	}
	if len(unlocked) > 0 {
		events.Progress.Unlocked(unlocked)
		m.setInfo("Unlocked: " + strings.Join(unlocked, ", "))
	}
}

func (m *Model) routeLabel(idx int) string {
	if idx < 0 || idx >= len(m.nav.Routes.Items) {
		return ""
	}
	return m.nav.Routes.Items[idx].Label
}

// lockedRoutes returns the indices of routes that are currently locked.
func (m *Model) lockedRoutes() map[int]struct{} {
	locked := make(map[int]struct{})
	for i := range m.nav.Routes.Items {
		if !m.progress.IsRouteUnlocked(i) {
			locked[i] = struct{}{}
		}
	}
	return locked
}

func (m *Model) cursor() (int, bool) {
	switch m.nav.View().Screen {
	case uistate.ScreenRouteSelection:
		return m.nav.Routes.Cursor, true
	case uistate.ScreenRouteDetails:
		if m.nav.Steps != nil {
			return m.nav.Steps.Cursor, true
		}
	}
	return 0, false
}

func (m *Model) syncViewport() {
	maxVisible := m.maxVisibleItems()
	m.nav.Routes.EnsureCursorVisible(maxVisible)
	if m.nav.Steps != nil {
		m.nav.Steps.EnsureCursorVisible(maxVisible)
	}
}
