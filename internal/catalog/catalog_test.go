package catalog

import (
	"errors"
	"testing"
)

func TestResolveImplementedTitle(t *testing.T) {
	c := Default()
	for _, query := range []string{"chaos_head", "  CHAOS_HEAD ", "Chaos;Head", "chaos-head"} {
		title, err := c.Resolve(query)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", query, err)
		}
		if title.ID != "chaos_head" || title.DisplayName() != "Chaos;Head" {
			t.Fatalf("%q: unexpected title %#v", query, title)
		}
	}
}

func TestResolveKnownButNotImplemented(t *testing.T) {
	title, err := Default().Resolve("steins_gate")
	if !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
	if title.ID != "steins_gate" {
		t.Fatalf("expected title returned alongside error, got %#v", title)
	}
}

func TestResolveUnknown(t *testing.T) {
	_, err := Default().Resolve("umineko")
	if !errors.Is(err, ErrUnknownTitle) {
		t.Fatalf("expected ErrUnknownTitle, got %v", err)
	}
}

func TestAvailable(t *testing.T) {
	got := Default().Available()
	if len(got) != 1 || got[0] != "chaos_head" {
		t.Fatalf("expected [chaos_head], got %v", got)
	}
	if n := len(Default().Titles()); n != 6 {
		t.Fatalf("expected 6 titles, got %d", n)
	}
}

func TestNewSkipsDuplicatesAndBlanks(t *testing.T) {
	c := New([]Title{{ID: "a", Implemented: true}, {ID: "A"}, {ID: "  "}})
	titles := c.Titles()
	if len(titles) != 1 || !titles[0].Implemented {
		t.Fatalf("expected first entry kept, got %#v", titles)
	}
	if titles[0].DisplayName() != "a" {
		t.Fatalf("expected id as display name, got %q", titles[0].DisplayName())
	}
}

func TestSuggest(t *testing.T) {
	c := Default()
	got := c.Suggest("chaos")
	if len(got) != 2 || got[0] != "chaos_head" || got[1] != "chaos_child" {
		t.Fatalf("expected chaos titles, got %v", got)
	}
	got = c.Suggest("chaos_haed")
	if len(got) == 0 || got[0] != "chaos_head" {
		t.Fatalf("expected chaos_head first for a typo, got %v", got)
	}
	if got := c.Suggest("zzzzzzzzzz"); len(got) != 0 {
		t.Fatalf("expected no suggestions, got %v", got)
	}
	if got := c.Suggest(""); got != nil {
		t.Fatalf("expected nil for empty query, got %v", got)
	}
}
