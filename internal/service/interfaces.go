package service

import (
	"context"

	"blog-content-pipeline/internal/domain"
)

// StepResult describes the outcome of a handled step request: the updated
// draft snapshot, the stage output, and the recommended next step.
type StepResult struct {
	Draft            *domain.Draft
	Step             domain.Step
	Message          string
	Data             any
	NextStep         domain.Step // empty on the terminal transition
	IsLastHeading    *bool       // set by content actions
	NextHeadingIndex *int        // set by content approve, nil once the loop is done
}

// ProgressServiceInterface defines the gated generation pipeline operations.
// Used for dependency injection and mocking in tests.
type ProgressServiceInterface interface {
	// HandleStep validates and executes one step request.
	HandleStep(ctx context.Context, req *domain.StepRequest) (*StepResult, error)
	// GetDraft retrieves a draft snapshot by ID.
	GetDraft(ctx context.Context, id string) (*domain.Draft, error)
	// ListDrafts returns the most recently updated drafts.
	ListDrafts(ctx context.Context, limit int) ([]domain.Draft, error)
}

// OneShotServiceInterface defines the ungated single-call generation mode.
// Used for dependency injection and mocking in tests.
type OneShotServiceInterface interface {
	// Generate produces a complete document for a topic in one call,
	// with no persistence and no approval gates.
	Generate(ctx context.Context, topic string) (*domain.Draft, error)
}
