package content

// Document is the top-level YAML structure of a walkthrough file.
type Document struct {
	Title  string        `yaml:"title"`
	Name   string        `yaml:"name"`
	Routes []RouteSchema `yaml:"routes"`
}

// RouteSchema defines a route entry in the walkthrough file.
type RouteSchema struct {
	Name          string          `yaml:"name"`
	Description   string          `yaml:"description"`
	Prerequisites []string        `yaml:"prerequisites,omitempty"`
	Chapters      []ChapterSchema `yaml:"chapters"`
}

// ChapterSchema defines a chapter entry within a route.
type ChapterSchema struct {
	Number int          `yaml:"number"`
	Name   string       `yaml:"name"`
	Steps  []StepSchema `yaml:"steps"`
}

// StepSchema defines a step entry. Kind selects which of the payload fields
// is read.
type StepSchema struct {
	ID          string         `yaml:"id"`
	Description string         `yaml:"description"`
	Kind        string         `yaml:"kind"`
	Trigger     *TriggerSchema `yaml:"trigger,omitempty"`
	Prompts     []PromptSchema `yaml:"prompts,omitempty"`
	Instruction string         `yaml:"instruction,omitempty"`
	SavePoint   string         `yaml:"save_point,omitempty"`
}

// TriggerSchema is the payload for delusion_trigger steps.
type TriggerSchema struct {
	Number   int    `yaml:"number"`
	Polarity string `yaml:"polarity"`
	Location string `yaml:"location"`
}

// PromptSchema is one YES/NO question.
type PromptSchema struct {
	Question string `yaml:"question"`
	Answer   bool   `yaml:"answer"`
}

const (
	KindDelusionTrigger = "delusion_trigger"
	KindYesNoPrompts    = "yes_no_prompts"
	KindInstruction     = "instruction"
	KindCheckpoint      = "checkpoint"
)
