package domain

// StepRequest is the controller input: a step, an action, and the payload
// the combination needs. Field names match the JSON body of the step
// endpoint.
type StepRequest struct {
	Step              Step              `json:"step"`
	Action            Action            `json:"action"`
	DraftID           string            `json:"draft_id,omitempty"`
	Prompt            string            `json:"prompt,omitempty"`
	HeadingIndex      *int              `json:"heading_index,omitempty"`
	ImageDescriptions map[string]string `json:"image_descriptions,omitempty"`
}

// IsGenerate reports whether the action is a (re)generation. The two verbs
// are functionally identical overwrites; the distinction is caller intent.
func (r *StepRequest) IsGenerate() bool {
	return r.Action == ActionGenerate || r.Action == ActionRegenerate
}
