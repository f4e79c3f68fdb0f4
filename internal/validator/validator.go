package validator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blog-content-pipeline/internal/domain"
)

var (
	validSteps = []interface{}{
		domain.StepHeadings, domain.StepImages, domain.StepContent,
		domain.StepSummary, domain.StepConclusion, domain.StepFAQ, domain.StepSEO,
	}
	validActions = []interface{}{
		domain.ActionGenerate, domain.ActionRegenerate,
		domain.ActionApprove, domain.ActionSaveDescriptions,
	}
)

// Validator provides validation methods for pipeline requests.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateStepRequest validates the shape of a step request: recognized step
// and action values plus the payload fields the combination requires.
// Whether the (step, action) pair exists in the transition table is the
// controller's decision, not a field-shape concern.
func (v *Validator) ValidateStepRequest(r *domain.StepRequest) error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Step,
			validation.Required.Error("step_required"),
			validation.In(validSteps...).Error("invalid_step"),
		),
		validation.Field(&r.Action,
			validation.Required.Error("action_required"),
			validation.In(validActions...).Error("invalid_action"),
		),
	)
	if err != nil {
		return err
	}

	// A draft ID is required everywhere except the first headings generation,
	// which may create the draft.
	if r.DraftID == "" {
		if !(r.Step == domain.StepHeadings && r.IsGenerate()) {
			return validation.Errors{
				"draft_id": validation.NewError("draft_id_required", "draft_id is required"),
			}
		}
	} else if err := validation.Validate(r.DraftID, is.UUIDv4.Error("invalid_draft_id")); err != nil {
		return validation.Errors{
			"draft_id": validation.NewError("invalid_draft_id", "draft_id must be a valid UUID"),
		}
	}

	switch r.Step {
	case domain.StepHeadings:
		if r.IsGenerate() && r.Prompt == "" {
			return validation.Errors{
				"prompt": validation.NewError("prompt_required", "prompt is required"),
			}
		}
	case domain.StepContent:
		// heading_index is a payload field of the content operations that
		// take one; any other action on this step is ruled on by the
		// transition table, not rejected here for a missing field.
		if r.Action != domain.ActionSaveDescriptions && r.HeadingIndex == nil {
			return validation.Errors{
				"heading_index": validation.NewError("heading_index_required", "heading_index is required"),
			}
		}
	case domain.StepImages:
		if r.Action == domain.ActionSaveDescriptions && len(r.ImageDescriptions) == 0 {
			return validation.Errors{
				"image_descriptions": validation.NewError("image_descriptions_required", "image_descriptions is required"),
			}
		}
	}

	return nil
}

// ValidateTopic validates a one-shot generation topic.
func (v *Validator) ValidateTopic(topic string) error {
	return validation.Validate(topic,
		validation.Required.Error("topic_required"),
		validation.Length(3, 500).Error("topic_length"),
	)
}
