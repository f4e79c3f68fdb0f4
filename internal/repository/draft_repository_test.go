package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-content-pipeline/internal/domain"
	"blog-content-pipeline/internal/repository"
)

func newTestDraft() *domain.Draft {
	now := time.Now().UTC().Truncate(time.Microsecond)
	draft := &domain.Draft{
		ID:    uuid.New().String(),
		Topic: "kubernetes cost optimization",
		Headings: []domain.Heading{
			{ID: "h0", Text: "Why costs balloon", Level: 2},
			{ID: "h1", Text: "Right-sizing workloads", Level: 2},
			{ID: "h2", Text: "Spot instances", Level: 3},
		},
		SEOMetadata: map[string]any{
			"working_title": "Cutting Your Kubernetes Bill",
			"focus_keyword": "kubernetes cost",
		},
		Progress:        domain.NewGenerationProgress(3),
		LifecycleStatus: domain.LifecycleInProgress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return draft
}

func TestDraftRepository_CreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := repository.NewPostgresDraftRepository(tdb.Pool)
	ctx := context.Background()

	draft := newTestDraft()
	require.NoError(t, repo.Create(ctx, draft))

	got, err := repo.Get(ctx, draft.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, draft.ID, got.ID)
	assert.Equal(t, draft.Topic, got.Topic)
	assert.Len(t, got.Headings, 3)
	assert.Equal(t, "h1", got.Headings[1].ID)
	assert.Equal(t, "Right-sizing workloads", got.Headings[1].Text)
	assert.Equal(t, domain.StepHeadings, got.Progress.CurrentStep)
	assert.Equal(t, []bool{false, false, false}, got.Progress.ContentApproved)
	assert.Equal(t, "Cutting Your Kubernetes Bill", got.Title())
	assert.Equal(t, domain.LifecycleInProgress, got.LifecycleStatus)
	assert.Nil(t, got.Summary)
	assert.Nil(t, got.CompiledOutput)
}

func TestDraftRepository_GetNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := repository.NewPostgresDraftRepository(tdb.Pool)

	got, err := repo.Get(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, got, "missing draft should return nil, nil")
}

func TestDraftRepository_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := repository.NewPostgresDraftRepository(tdb.Pool)
	ctx := context.Background()

	draft := newTestDraft()
	require.NoError(t, repo.Create(ctx, draft))

	summary := "An introduction to controlling spend."
	conclusion := "Start with right-sizing, then automate."
	draft.Summary = &summary
	draft.Conclusion = &conclusion
	draft.FAQs = []domain.FAQItem{
		{Question: "Is spot safe for production?", Answer: "For stateless workloads, yes."},
	}
	draft.Progress.HeadingsApproved = true
	draft.Progress.AdvanceTo(domain.StepSummary)
	draft.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

	require.NoError(t, repo.Update(ctx, draft))

	got, err := repo.Get(ctx, draft.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	require.NotNil(t, got.Summary)
	assert.Equal(t, summary, *got.Summary)
	require.NotNil(t, got.Conclusion)
	assert.Equal(t, conclusion, *got.Conclusion)
	require.Len(t, got.FAQs, 1)
	assert.Equal(t, "Is spot safe for production?", got.FAQs[0].Question)
	assert.True(t, got.Progress.HeadingsApproved)
	assert.Equal(t, domain.StepSummary, got.Progress.CurrentStep)
}

func TestDraftRepository_UpdateHeadingContent(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := repository.NewPostgresDraftRepository(tdb.Pool)
	ctx := context.Background()

	draft := newTestDraft()
	require.NoError(t, repo.Create(ctx, draft))

	progress := draft.Progress
	idx := 1
	progress.CurrentHeadingIndex = &idx
	content := "Requests and limits drive scheduling decisions."

	require.NoError(t, repo.UpdateHeadingContent(ctx, draft.ID, 1, content, progress))

	got, err := repo.Get(ctx, draft.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, content, got.Headings[1].Content)
	// Sibling headings must not be touched.
	assert.Empty(t, got.Headings[0].Content)
	assert.Empty(t, got.Headings[2].Content)
	require.NotNil(t, got.Progress.CurrentHeadingIndex)
	assert.Equal(t, 1, *got.Progress.CurrentHeadingIndex)
}

func TestDraftRepository_UpdateProgress(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := repository.NewPostgresDraftRepository(tdb.Pool)
	ctx := context.Background()

	draft := newTestDraft()
	require.NoError(t, repo.Create(ctx, draft))

	progress := draft.Progress
	progress.HeadingsApproved = true
	progress.AdvanceTo(domain.StepImages)
	progress.ImageDescriptions = map[string]string{"h0": "a dashboard of cluster spend"}

	require.NoError(t, repo.UpdateProgress(ctx, draft.ID, progress))

	got, err := repo.Get(ctx, draft.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.True(t, got.Progress.HeadingsApproved)
	assert.Equal(t, domain.StepImages, got.Progress.CurrentStep)
	assert.Equal(t, "a dashboard of cluster spend", got.Progress.ImageDescriptions["h0"])
	// Progress updates must not touch the outline.
	assert.Equal(t, draft.Topic, got.Topic)
	assert.Len(t, got.Headings, 3)
}

func TestDraftRepository_List(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := repository.NewPostgresDraftRepository(tdb.Pool)
	ctx := context.Background()

	first := newTestDraft()
	require.NoError(t, repo.Create(ctx, first))

	second := newTestDraft()
	second.Topic = "terraform state management"
	second.UpdatedAt = second.UpdatedAt.Add(time.Second)
	second.CreatedAt = second.CreatedAt.Add(time.Second)
	require.NoError(t, repo.Create(ctx, second))

	drafts, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	// Most recently updated first.
	assert.Equal(t, second.ID, drafts[0].ID)
	assert.Equal(t, first.ID, drafts[1].ID)

	limited, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, second.ID, limited[0].ID)
}
