// Package catalog lists the titles the browser recognises. A Catalog is built
// once at startup and passed to whatever needs to resolve a title.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

var (
	// ErrUnknownTitle reports a query that matches no catalogued title.
	ErrUnknownTitle = errors.New("not a recognised title")
	// ErrNotImplemented reports a recognised title without a walkthrough.
	ErrNotImplemented = errors.New("known but not yet implemented")
)

// maxEditDistance bounds the Levenshtein fallback used for suggestions.
const maxEditDistance = 3

// Title is one catalogue entry.
type Title struct {
	ID          string
	Stylized    string
	Implemented bool
}

// DisplayName prefers the stylized name.
func (t Title) DisplayName() string {
	if t.Stylized != "" {
		return t.Stylized
	}
	return t.ID
}

// Catalog is a read-only, ordered set of titles.
type Catalog struct {
	titles []Title
	byID   map[string]int
}

// New builds a catalog. Later duplicates of an ID are ignored.
func New(titles []Title) *Catalog {
	c := &Catalog{byID: make(map[string]int, len(titles))}
	for _, t := range titles {
		id := normalize(t.ID)
		if id == "" {
			continue
		}
		if _, dup := c.byID[id]; dup {
			continue
		}
		t.ID = id
		c.byID[id] = len(c.titles)
		c.titles = append(c.titles, t)
	}
	return c
}

// Default returns the catalogue of Science Adventure titles.
func Default() *Catalog {
	return New([]Title{
		{ID: "chaos_head", Stylized: "Chaos;Head", Implemented: true},
		{ID: "steins_gate", Stylized: "Steins;Gate"},
		{ID: "robotics_notes", Stylized: "Robotics;Notes"},
		{ID: "chaos_child", Stylized: "Chaos;Child"},
		{ID: "occultic_nine", Stylized: "Occultic;Nine"},
		{ID: "anonymous_code", Stylized: "Anonymous;Code"},
	})
}

// Titles returns every entry in catalogue order.
func (c *Catalog) Titles() []Title {
	return append([]Title(nil), c.titles...)
}

// Available returns the IDs of implemented titles.
func (c *Catalog) Available() []string {
	var ids []string
	for _, t := range c.titles {
		if t.Implemented {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// Lookup matches a query against IDs. Case, surrounding whitespace and the
// separators in stylized names ("Chaos;Head", "chaos-head") are ignored.
func (c *Catalog) Lookup(query string) (Title, bool) {
	q := normalize(query)
	idx, ok := c.byID[q]
	if !ok {
		return Title{}, false
	}
	return c.titles[idx], true
}

// Resolve returns the implemented title for query. The error wraps
// ErrUnknownTitle or ErrNotImplemented.
func (c *Catalog) Resolve(query string) (Title, error) {
	t, ok := c.Lookup(query)
	if !ok {
		return Title{}, fmt.Errorf("%q is %w", strings.TrimSpace(query), ErrUnknownTitle)
	}
	if !t.Implemented {
		return t, fmt.Errorf("%q is %w", t.DisplayName(), ErrNotImplemented)
	}
	return t, nil
}

// Suggest returns IDs close to query, best first. Subsequence matches rank
// ahead of edit-distance matches.
func (c *Catalog) Suggest(query string) []string {
	q := normalize(query)
	if q == "" {
		return nil
	}
	ids := make([]string, len(c.titles))
	for i, t := range c.titles {
		ids[i] = t.ID
	}

	ranks := fuzzy.RankFindNormalizedFold(q, ids)
	sort.Stable(ranks)
	seen := make(map[string]struct{}, len(ids))
	var out []string
	for _, r := range ranks {
		out = append(out, r.Target)
		seen[r.Target] = struct{}{}
	}

	type near struct {
		id   string
		dist int
	}
	var nearby []near
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		if d := fuzzy.LevenshteinDistance(q, id); d <= maxEditDistance {
			nearby = append(nearby, near{id: id, dist: d})
		}
	}
	sort.SliceStable(nearby, func(i, j int) bool { return nearby[i].dist < nearby[j].dist })
	for _, n := range nearby {
		out = append(out, n.id)
	}
	return out
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_", ";", "_").Replace(s)
}
