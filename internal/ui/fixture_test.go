package ui

import (
	"github.com/atomicstack/route-guide/internal/state"
	"github.com/atomicstack/route-guide/internal/walkthrough"
)

// testRoutes returns three routes: Common (two chapters, three steps),
// Locked (requires Common, first chapter empty) and Orphan (requires a route
// that does not exist).
func testRoutes() []walkthrough.Route {
	return []walkthrough.Route{
		{
			Name:        "Common",
			Description: "The shared opening.",
			Chapters: []walkthrough.Chapter{
				{Number: 1, Name: "Opening", Steps: []walkthrough.Step{
					{ID: "c1", Description: "Take the first trigger", Kind: walkthrough.DelusionTrigger{Number: 1, Polarity: walkthrough.PolarityPositive, Location: "the rooftop"}},
					{ID: "c2", Description: "Answer the prompts", Kind: walkthrough.YesNoPrompts{Prompts: []walkthrough.Prompt{{Question: "Go outside?", Answer: true}, {Question: "Stay?", Answer: false}}}},
				}},
				{Number: 2, Name: "Middle", Steps: []walkthrough.Step{
					{ID: "c3", Description: "Save before the choice", Kind: walkthrough.Checkpoint{SavePoint: "After the lecture"}},
				}},
			},
		},
		{
			Name:          "Locked",
			Description:   "Needs the opening.",
			Prerequisites: []string{"Common"},
			Chapters: []walkthrough.Chapter{
				{Number: 1, Name: "Empty"},
				{Number: 2, Name: "Finale", Steps: []walkthrough.Step{
					{ID: "l1", Description: "Read the ending", Kind: walkthrough.GeneralInstruction{Instruction: "Follow the credits."}},
					{ID: "l2", Description: "Last save", Kind: walkthrough.Checkpoint{SavePoint: "Epilogue"}},
				}},
			},
		},
		{
			Name:          "Orphan",
			Prerequisites: []string{"Missing"},
			Chapters: []walkthrough.Chapter{
				{Number: 1, Name: "Only", Steps: []walkthrough.Step{{ID: "o1", Description: "Unreachable", Kind: walkthrough.GeneralInstruction{}}}},
			},
		},
	}
}

func newTestModel(width, height int) (*Model, state.ProgressStore) {
	progress := state.NewProgressStore(testRoutes())
	return NewModel("Test;Title", progress, width, height), progress
}
