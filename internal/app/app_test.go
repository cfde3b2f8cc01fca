package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/route-guide/internal/catalog"
	"github.com/atomicstack/route-guide/internal/content"
	"github.com/atomicstack/route-guide/internal/testutil"
)

func TestPrepareBuiltinTitle(t *testing.T) {
	session, err := Prepare(Config{Title: "Chaos;Head"}, catalog.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Name != "Chaos;Head NoAH" {
		t.Fatalf("expected dataset name, got %q", session.Name)
	}
	if session.Source != "builtin:chaos_head" {
		t.Fatalf("expected builtin source, got %q", session.Source)
	}
	if got := session.Progress.RouteCount(); got != 9 {
		t.Fatalf("expected 9 routes, got %d", got)
	}
	if _, ok := session.Progress.ActiveRoute(); ok {
		t.Fatalf("expected no active route before browsing")
	}
}

func TestPrepareRejectsUnknownAndUnimplementedTitles(t *testing.T) {
	cat := catalog.Default()
	if _, err := Prepare(Config{Title: "clannad"}, cat); !errors.Is(err, catalog.ErrUnknownTitle) {
		t.Fatalf("expected ErrUnknownTitle, got %v", err)
	}
	if _, err := Prepare(Config{Title: "steins_gate"}, cat); !errors.Is(err, catalog.ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
}

func TestPrepareDataPathSkipsCatalog(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "walk.yaml")
	doc := "title: custom\nroutes:\n  - name: Only\n    chapters:\n      - number: 1\n        name: One\n        steps:\n          - {id: o1, description: go, kind: instruction, instruction: read}\n"
	if err := os.WriteFile(file, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	session, err := Prepare(Config{Title: "Custom Run", DataPath: file}, catalog.New(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Name != "Custom Run" {
		t.Fatalf("expected title flag as name when dataset has none, got %q", session.Name)
	}
	if session.Progress.RouteCount() != 1 {
		t.Fatalf("expected 1 route, got %d", session.Progress.RouteCount())
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("routes: []\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Prepare(Config{DataPath: bad}, catalog.New(nil)); !errors.Is(err, content.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestListTitles(t *testing.T) {
	var b strings.Builder
	if err := ListTitles(&b, catalog.Default()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected header plus 6 titles, got %d lines:\n%s", len(lines), b.String())
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "STATUS") {
		t.Fatalf("expected header row, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "chaos_head") || !strings.HasSuffix(lines[1], "available") {
		t.Fatalf("expected chaos_head available, got %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "not yet implemented") {
		t.Fatalf("expected steins_gate unimplemented, got %q", lines[2])
	}
	for _, line := range lines {
		if strings.HasSuffix(line, " ") {
			t.Fatalf("expected trailing spaces trimmed, got %q", line)
		}
	}
	testutil.AssertGolden(t, "list_titles.txt", b.String())
}
