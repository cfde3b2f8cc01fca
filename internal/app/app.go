package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/route-guide/internal/catalog"
	"github.com/atomicstack/route-guide/internal/content"
	"github.com/atomicstack/route-guide/internal/format/table"
	"github.com/atomicstack/route-guide/internal/logging/events"
	"github.com/atomicstack/route-guide/internal/state"
	"github.com/atomicstack/route-guide/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Title    string
	DataPath string
	Width    int
	Height   int
}

// Session is a loaded walkthrough ready to browse.
type Session struct {
	Name     string
	Source   string
	Progress state.ProgressStore
}

// Prepare resolves the requested walkthrough. A data path takes precedence
// over the catalog; otherwise the title must be catalogued and implemented.
func Prepare(cfg Config, cat *catalog.Catalog) (*Session, error) {
	var (
		walk   *content.Walkthrough
		name   string
		source string
		err    error
	)
	if cfg.DataPath != "" {
		source = cfg.DataPath
		walk, err = content.LoadFile(cfg.DataPath)
		if err != nil {
			return nil, fmt.Errorf("load walkthrough: %w", err)
		}
		name = cfg.Title
	} else {
		title, rerr := cat.Resolve(cfg.Title)
		events.Catalog.Resolve(cfg.Title, title.ID, rerr)
		if rerr != nil {
			return nil, rerr
		}
		source = "builtin:" + title.ID
		walk, err = content.Builtin(title.ID)
		if err != nil {
			return nil, fmt.Errorf("load walkthrough: %w", err)
		}
		name = title.DisplayName()
	}
	if walk.Name != "" {
		name = walk.Name
	}
	if name == "" {
		name = walk.Title
	}
	events.Catalog.Load(source, len(walk.Routes))
	return &Session{
		Name:     name,
		Source:   source,
		Progress: state.NewProgressStore(walk.Routes),
	}, nil
}

// Run executes the Bubble Tea program over a prepared session.
func Run(session *Session, cfg Config) error {
	model := ui.NewModel(session.Name, session.Progress, cfg.Width, cfg.Height)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// ListTitles writes the catalog as an aligned table.
func ListTitles(w io.Writer, cat *catalog.Catalog) error {
	rows := [][]string{{"ID", "TITLE", "STATUS"}}
	for _, t := range cat.Titles() {
		status := "not yet implemented"
		if t.Implemented {
			status = "available"
		}
		rows = append(rows, []string{t.ID, t.DisplayName(), status})
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft}) {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}
