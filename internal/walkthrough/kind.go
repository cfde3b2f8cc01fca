package walkthrough

// StepKind is the read-only payload of a step. The set of implementations is
// closed: DelusionTrigger, YesNoPrompts, GeneralInstruction, Checkpoint.
type StepKind interface {
	// Label is the human-readable name of the kind.
	Label() string
	isStepKind()
}

// Polarity classifies a delusion trigger.
type Polarity int

const (
	PolarityNeutral Polarity = iota
	PolarityPositive
	PolarityNegative
)

func (p Polarity) String() string {
	switch p {
	case PolarityPositive:
		return "Positive"
	case PolarityNegative:
		return "Negative"
	default:
		return "Neutral"
	}
}

// DelusionTrigger asks the player to pick a polarity at a given moment.
type DelusionTrigger struct {
	Number   int
	Polarity Polarity
	Location string
}

// Prompt is one YES/NO question and the answer the route needs.
type Prompt struct {
	Question string
	Answer   bool
}

// YesNoPrompts is an ordered series of YES/NO questions.
type YesNoPrompts struct {
	Prompts []Prompt
}

// GeneralInstruction is free-text guidance.
type GeneralInstruction struct {
	Instruction string
}

// Checkpoint marks a point where the player should save.
type Checkpoint struct {
	SavePoint string
}

func (DelusionTrigger) Label() string    { return "Delusion Trigger" }
func (YesNoPrompts) Label() string       { return "YES/NO Prompts" }
func (GeneralInstruction) Label() string { return "General Instruction" }
func (Checkpoint) Label() string         { return "Save Checkpoint" }

func (DelusionTrigger) isStepKind()    {}
func (YesNoPrompts) isStepKind()       {}
func (GeneralInstruction) isStepKind() {}
func (Checkpoint) isStepKind()         {}
