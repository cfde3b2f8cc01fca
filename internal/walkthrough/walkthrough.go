// Package walkthrough defines the route, chapter, and step values that make up
// a visual-novel walkthrough.
package walkthrough

// Route is one complete story branch. Name is the identity key used by
// prerequisite references.
type Route struct {
	Name          string
	Description   string
	Chapters      []Chapter
	Prerequisites []string
}

// Chapter groups the steps of a route. Number is for display only.
type Chapter struct {
	Number int
	Name   string
	Steps  []Step
}

// Step is the smallest trackable unit of progress.
type Step struct {
	ID          string
	Description string
	Kind        StepKind
	Completed   bool
}

// StepCount returns the number of steps across all chapters.
func (r Route) StepCount() int {
	total := 0
	for _, ch := range r.Chapters {
		total += len(ch.Steps)
	}
	return total
}

// CompletedCount returns the number of steps whose cached flag is set.
func (r Route) CompletedCount() int {
	done := 0
	for _, ch := range r.Chapters {
		for _, st := range ch.Steps {
			if st.Completed {
				done++
			}
		}
	}
	return done
}

// Step returns the step at the given chapter/step position.
func (r Route) Step(chapter, step int) (Step, bool) {
	if chapter < 0 || chapter >= len(r.Chapters) {
		return Step{}, false
	}
	steps := r.Chapters[chapter].Steps
	if step < 0 || step >= len(steps) {
		return Step{}, false
	}
	return steps[step], true
}

// Clone returns a deep copy of the route structure. StepKind values are
// immutable and shared.
func (r Route) Clone() Route {
	dup := r
	dup.Prerequisites = append([]string(nil), r.Prerequisites...)
	if r.Chapters != nil {
		dup.Chapters = make([]Chapter, len(r.Chapters))
		for i, ch := range r.Chapters {
			dup.Chapters[i] = ch
			if ch.Steps != nil {
				dup.Chapters[i].Steps = append([]Step(nil), ch.Steps...)
			}
		}
	}
	return dup
}

// CloneRoutes deep-copies a route slice.
func CloneRoutes(routes []Route) []Route {
	if len(routes) == 0 {
		return nil
	}
	dup := make([]Route, len(routes))
	for i, r := range routes {
		dup[i] = r.Clone()
	}
	return dup
}
