package content

import (
	"strings"

	"github.com/atomicstack/route-guide/internal/walkthrough"
)

// Convert transforms a validated document into walkthrough routes.
// Call Validate first; Convert assumes the document is valid.
func Convert(doc *Document) []walkthrough.Route {
	routes := make([]walkthrough.Route, 0, len(doc.Routes))
	for _, r := range doc.Routes {
		route := walkthrough.Route{
			Name:          r.Name,
			Description:   r.Description,
			Prerequisites: append([]string(nil), r.Prerequisites...),
			Chapters:      make([]walkthrough.Chapter, 0, len(r.Chapters)),
		}
		for _, ch := range r.Chapters {
			chapter := walkthrough.Chapter{
				Number: ch.Number,
				Name:   ch.Name,
				Steps:  make([]walkthrough.Step, 0, len(ch.Steps)),
			}
			for _, st := range ch.Steps {
				chapter.Steps = append(chapter.Steps, walkthrough.Step{
					ID:          st.ID,
					Description: st.Description,
					Kind:        convertKind(st),
				})
			}
			route.Chapters = append(route.Chapters, chapter)
		}
		routes = append(routes, route)
	}
	return routes
}

func convertKind(st StepSchema) walkthrough.StepKind {
	switch st.Kind {
	case KindDelusionTrigger:
		trig := walkthrough.DelusionTrigger{}
		if st.Trigger != nil {
			trig.Number = st.Trigger.Number
			trig.Polarity = parsePolarity(st.Trigger.Polarity)
			trig.Location = st.Trigger.Location
		}
		return trig
	case KindYesNoPrompts:
		prompts := make([]walkthrough.Prompt, len(st.Prompts))
		for i, p := range st.Prompts {
			prompts[i] = walkthrough.Prompt{Question: p.Question, Answer: p.Answer}
		}
		return walkthrough.YesNoPrompts{Prompts: prompts}
	case KindCheckpoint:
		return walkthrough.Checkpoint{SavePoint: st.SavePoint}
	default:
		return walkthrough.GeneralInstruction{Instruction: st.Instruction}
	}
}

func parsePolarity(value string) walkthrough.Polarity {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "positive":
		return walkthrough.PolarityPositive
	case "negative":
		return walkthrough.PolarityNegative
	default:
		return walkthrough.PolarityNeutral
	}
}
