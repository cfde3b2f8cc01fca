package content

import (
	"fmt"
	"strings"
)

var (
	validKinds = map[string]bool{
		KindDelusionTrigger: true,
		KindYesNoPrompts:    true,
		KindInstruction:     true,
		KindCheckpoint:      true,
	}
	validPolarities = map[string]bool{"positive": true, "negative": true, "neutral": true}
)

// Validate checks the document for structural errors before conversion and
// returns every problem found. Prerequisite names are not resolved: an
// unknown prerequisite simply keeps its route locked.
func Validate(doc *Document) []error {
	var errs []error
	if len(doc.Routes) == 0 {
		errs = append(errs, fmt.Errorf("routes: at least one route is required"))
	}
	routeNames := make(map[string]bool, len(doc.Routes))
	stepIDs := make(map[string]string)
	for i, r := range doc.Routes {
		where := fmt.Sprintf("routes[%d]", i)
		if strings.TrimSpace(r.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", where))
		} else if routeNames[r.Name] {
			errs = append(errs, fmt.Errorf("%s.name: duplicate route %q", where, r.Name))
		}
		routeNames[r.Name] = true
		for j, ch := range r.Chapters {
			chWhere := fmt.Sprintf("%s.chapters[%d]", where, j)
			for k, st := range ch.Steps {
				errs = append(errs, validateStep(fmt.Sprintf("%s.steps[%d]", chWhere, k), st, stepIDs)...)
			}
		}
	}
	return errs
}

func validateStep(where string, st StepSchema, seen map[string]string) []error {
	var errs []error
	if strings.TrimSpace(st.ID) == "" {
		errs = append(errs, fmt.Errorf("%s.id is required", where))
	} else if prev, ok := seen[st.ID]; ok {
		errs = append(errs, fmt.Errorf("%s.id: %q already used at %s", where, st.ID, prev))
	} else {
		seen[st.ID] = where
	}
	if !validKinds[st.Kind] {
		errs = append(errs, fmt.Errorf("%s.kind: invalid kind %q", where, st.Kind))
		return errs
	}
	switch st.Kind {
	case KindDelusionTrigger:
		if st.Trigger == nil {
			errs = append(errs, fmt.Errorf("%s.trigger is required for %s", where, st.Kind))
		} else if !validPolarities[strings.ToLower(st.Trigger.Polarity)] {
			errs = append(errs, fmt.Errorf("%s.trigger.polarity: invalid polarity %q", where, st.Trigger.Polarity))
		}
	case KindYesNoPrompts:
		if len(st.Prompts) == 0 {
			errs = append(errs, fmt.Errorf("%s.prompts: at least one prompt is required", where))
		}
	}
	return errs
}
