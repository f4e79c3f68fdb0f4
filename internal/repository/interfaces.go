package repository

import (
	"context"

	"blog-content-pipeline/internal/domain"
)

// DraftRepository defines methods for draft data access. Get returns
// (nil, nil) when no draft exists for the given ID.
//
// Update writes the full document back; the targeted methods replace one
// region of the stored document without touching sibling fields, since the
// controller mutates a single region per step.
type DraftRepository interface {
	Create(ctx context.Context, draft *domain.Draft) error
	Get(ctx context.Context, id string) (*domain.Draft, error)
	Update(ctx context.Context, draft *domain.Draft) error
	UpdateHeadingContent(ctx context.Context, id string, index int, content string, progress domain.GenerationProgress) error
	UpdateProgress(ctx context.Context, id string, progress domain.GenerationProgress) error
	List(ctx context.Context, limit int) ([]domain.Draft, error)
}
