package domain

// Step represents a stage of the generation pipeline.
type Step string

const (
	StepHeadings   Step = "headings"
	StepImages     Step = "images"
	StepContent    Step = "content"
	StepSummary    Step = "summary"
	StepConclusion Step = "conclusion"
	StepFAQ        Step = "faq"
	StepSEO        Step = "seo"
	// StepCompleted is the terminal state; it is never a valid request step.
	StepCompleted Step = "completed"
)

// stepOrder defines the fixed forward-only ordering of the pipeline.
var stepOrder = map[Step]int{
	StepHeadings:   0,
	StepImages:     1,
	StepContent:    2,
	StepSummary:    3,
	StepConclusion: 4,
	StepFAQ:        5,
	StepSEO:        6,
	StepCompleted:  7,
}

// RequestSteps contains the steps a caller may address directly.
var RequestSteps = []Step{
	StepHeadings, StepImages, StepContent, StepSummary, StepConclusion, StepFAQ, StepSEO,
}

// IsValidStep checks if a step is one of the addressable pipeline stages.
func IsValidStep(s Step) bool {
	_, ok := stepOrder[s]
	return ok && s != StepCompleted
}

// Order returns the position of the step in the pipeline sequence.
// Unknown steps sort last.
func (s Step) Order() int {
	if o, ok := stepOrder[s]; ok {
		return o
	}
	return len(stepOrder)
}

// Before reports whether s comes strictly before other in the pipeline order.
func (s Step) Before(other Step) bool {
	return s.Order() < other.Order()
}

// Action represents the requested operation within a stage.
type Action string

const (
	ActionGenerate         Action = "generate"
	ActionRegenerate       Action = "regenerate"
	ActionApprove          Action = "approve"
	ActionSaveDescriptions Action = "save-descriptions"
)

// ValidActions contains all recognized actions.
var ValidActions = []Action{ActionGenerate, ActionRegenerate, ActionApprove, ActionSaveDescriptions}

// IsValidAction checks if an action is recognized.
func IsValidAction(a Action) bool {
	for _, v := range ValidActions {
		if v == a {
			return true
		}
	}
	return false
}
