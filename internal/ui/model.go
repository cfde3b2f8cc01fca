package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/route-guide/internal/state"
	"github.com/atomicstack/route-guide/internal/theme"
	uistate "github.com/atomicstack/route-guide/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const infoDuration = 5 * time.Second

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the walkthrough browser.
type Model struct {
	title    string
	progress state.ProgressStore
	nav      *uistate.Navigator

	keys     keyMap
	help     help.Model
	showHelp bool
	quitting bool

	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wires a navigator over progress. Positive width or height pin the
// viewport instead of following terminal resizes.
func NewModel(title string, progress state.ProgressStore, width, height int) *Model {
	m := &Model{
		title:    title,
		progress: progress,
		nav:      uistate.NewNavigator(progress),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
		m.help.Width = width
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.syncViewport()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// Navigator exposes the view-state machine.
func (m *Model) Navigator() *uistate.Navigator {
	return m.nav
}

// Quitting reports whether a quit was requested.
func (m *Model) Quitting() bool {
	return m.quitting
}

// HelpVisible reports whether the help overlay is open.
func (m *Model) HelpVisible() bool {
	return m.showHelp
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
		m.help.Width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoDuration)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}
