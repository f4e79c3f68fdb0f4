package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-content-pipeline/internal/domain"
)

// PostgresDraftRepository implements DraftRepository using PostgreSQL.
// Outline, FAQ, SEO metadata, and progress are stored as JSONB so targeted
// updates can replace one region of the document with jsonb_set.
type PostgresDraftRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresDraftRepository creates a new PostgresDraftRepository.
func NewPostgresDraftRepository(pool *pgxpool.Pool) *PostgresDraftRepository {
	return &PostgresDraftRepository{pool: pool}
}

// Create inserts a new draft.
func (r *PostgresDraftRepository) Create(ctx context.Context, draft *domain.Draft) error {
	headings, faqs, seo, progress, err := marshalDraftFields(draft)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO drafts (id, topic, headings, summary, conclusion, faqs,
			seo_metadata, compiled_output, progress, lifecycle_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, draft.ID, draft.Topic, headings, draft.Summary, draft.Conclusion, faqs,
		seo, draft.CompiledOutput, progress, draft.LifecycleStatus, draft.CreatedAt, draft.UpdatedAt)

	if err != nil {
		return fmt.Errorf("insert draft: %w", err)
	}

	return nil
}

// Get retrieves a draft by ID. Returns (nil, nil) when the draft does not exist.
func (r *PostgresDraftRepository) Get(ctx context.Context, id string) (*domain.Draft, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, topic, headings, summary, conclusion, faqs,
			seo_metadata, compiled_output, progress, lifecycle_status, created_at, updated_at
		FROM drafts
		WHERE id = $1
	`, id)

	draft, err := scanDraft(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}

	return draft, nil
}

// Update writes the full draft document back.
func (r *PostgresDraftRepository) Update(ctx context.Context, draft *domain.Draft) error {
	headings, faqs, seo, progress, err := marshalDraftFields(draft)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		UPDATE drafts
		SET topic = $2, headings = $3, summary = $4, conclusion = $5, faqs = $6,
			seo_metadata = $7, compiled_output = $8, progress = $9,
			lifecycle_status = $10, updated_at = $11
		WHERE id = $1
	`, draft.ID, draft.Topic, headings, draft.Summary, draft.Conclusion, faqs,
		seo, draft.CompiledOutput, progress, draft.LifecycleStatus, draft.UpdatedAt)

	if err != nil {
		return fmt.Errorf("update draft: %w", err)
	}

	return nil
}

// UpdateHeadingContent replaces the content of one heading and the progress
// document, leaving every sibling field untouched.
func (r *PostgresDraftRepository) UpdateHeadingContent(ctx context.Context, id string, index int, content string, progress domain.GenerationProgress) error {
	progressJSON, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		UPDATE drafts
		SET headings = jsonb_set(headings, ARRAY[$2::text, 'content'], to_jsonb($3::text)),
			progress = $4,
			updated_at = NOW()
		WHERE id = $1
	`, id, fmt.Sprintf("%d", index), content, progressJSON)

	if err != nil {
		return fmt.Errorf("update heading content: %w", err)
	}

	return nil
}

// UpdateProgress replaces only the progress document.
func (r *PostgresDraftRepository) UpdateProgress(ctx context.Context, id string, progress domain.GenerationProgress) error {
	progressJSON, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		UPDATE drafts
		SET progress = $2, updated_at = NOW()
		WHERE id = $1
	`, id, progressJSON)

	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}

	return nil
}

// List returns the most recently updated drafts.
func (r *PostgresDraftRepository) List(ctx context.Context, limit int) ([]domain.Draft, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, topic, headings, summary, conclusion, faqs,
			seo_metadata, compiled_output, progress, lifecycle_status, created_at, updated_at
		FROM drafts
		ORDER BY updated_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query drafts: %w", err)
	}
	defer rows.Close()

	var drafts []domain.Draft
	for rows.Next() {
		draft, err := scanDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("scan draft: %w", err)
		}
		drafts = append(drafts, *draft)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return drafts, nil
}

func marshalDraftFields(draft *domain.Draft) (headings, faqs, seo, progress []byte, err error) {
	if headings, err = json.Marshal(draft.Headings); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal headings: %w", err)
	}
	if faqs, err = json.Marshal(draft.FAQs); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal faqs: %w", err)
	}
	if draft.SEOMetadata == nil {
		seo = []byte("{}")
	} else if seo, err = json.Marshal(draft.SEOMetadata); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal seo metadata: %w", err)
	}
	if progress, err = json.Marshal(draft.Progress); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal progress: %w", err)
	}
	return headings, faqs, seo, progress, nil
}

func scanDraft(row pgx.Row) (*domain.Draft, error) {
	var draft domain.Draft
	var headings, faqs, seo, progress []byte

	err := row.Scan(&draft.ID, &draft.Topic, &headings, &draft.Summary, &draft.Conclusion,
		&faqs, &seo, &draft.CompiledOutput, &progress, &draft.LifecycleStatus,
		&draft.CreatedAt, &draft.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(headings, &draft.Headings); err != nil {
		return nil, fmt.Errorf("unmarshal headings: %w", err)
	}
	if err := json.Unmarshal(faqs, &draft.FAQs); err != nil {
		return nil, fmt.Errorf("unmarshal faqs: %w", err)
	}
	if err := json.Unmarshal(seo, &draft.SEOMetadata); err != nil {
		return nil, fmt.Errorf("unmarshal seo metadata: %w", err)
	}
	if err := json.Unmarshal(progress, &draft.Progress); err != nil {
		return nil, fmt.Errorf("unmarshal progress: %w", err)
	}

	return &draft, nil
}
