package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"blog-content-pipeline/internal/compiler"
	"blog-content-pipeline/internal/domain"
	"blog-content-pipeline/internal/generation"
	"blog-content-pipeline/internal/logger"
	"blog-content-pipeline/internal/metrics"
	"blog-content-pipeline/internal/repository"
	"blog-content-pipeline/internal/validator"
)

// stepAction keys the transition table. A (step, action) pair without an
// entry is the invalid-combination error; there is no fallthrough branch.
type stepAction struct {
	step   domain.Step
	action domain.Action
}

type stepHandler func(ctx context.Context, req *domain.StepRequest, draft *domain.Draft) (*StepResult, error)

// ProgressService is the generation progress controller: it decides, for a
// given (step, action, payload) request, whether the request is valid, what
// persisted state changes, and what the caller should do next.
//
// Requests addressed to the same draft are serialized with a per-draft lock
// held across the whole load-modify-write window, so concurrent requests
// cannot lose updates.
type ProgressService struct {
	drafts    repository.DraftRepository
	engine    generation.Engine
	compiler  compiler.Compiler
	validator *validator.Validator
	locks     *draftLocks
	table     map[stepAction]stepHandler
}

// NewProgressService creates a new ProgressService.
func NewProgressService(
	drafts repository.DraftRepository,
	engine generation.Engine,
	comp compiler.Compiler,
	v *validator.Validator,
) *ProgressService {
	s := &ProgressService{
		drafts:    drafts,
		engine:    engine,
		compiler:  comp,
		validator: v,
		locks:     newDraftLocks(),
	}

	// generate and regenerate are the same overwrite operation; the verb
	// only records caller intent.
	s.table = map[stepAction]stepHandler{
		{domain.StepHeadings, domain.ActionGenerate}:       s.handleHeadingsGenerate,
		{domain.StepHeadings, domain.ActionRegenerate}:     s.handleHeadingsGenerate,
		{domain.StepHeadings, domain.ActionApprove}:        s.handleHeadingsApprove,
		{domain.StepImages, domain.ActionSaveDescriptions}: s.handleImagesSaveDescriptions,
		{domain.StepContent, domain.ActionGenerate}:        s.handleContentGenerate,
		{domain.StepContent, domain.ActionRegenerate}:      s.handleContentGenerate,
		{domain.StepContent, domain.ActionApprove}:         s.handleContentApprove,
		{domain.StepSummary, domain.ActionGenerate}:        s.handleSummaryGenerate,
		{domain.StepSummary, domain.ActionRegenerate}:      s.handleSummaryGenerate,
		{domain.StepSummary, domain.ActionApprove}:         s.handleSummaryApprove,
		{domain.StepConclusion, domain.ActionGenerate}:     s.handleConclusionGenerate,
		{domain.StepConclusion, domain.ActionRegenerate}:   s.handleConclusionGenerate,
		{domain.StepConclusion, domain.ActionApprove}:      s.handleConclusionApprove,
		{domain.StepFAQ, domain.ActionGenerate}:            s.handleFAQGenerate,
		{domain.StepFAQ, domain.ActionRegenerate}:          s.handleFAQGenerate,
		{domain.StepFAQ, domain.ActionApprove}:             s.handleFAQApprove,
		{domain.StepSEO, domain.ActionGenerate}:            s.handleSEOGenerate,
		{domain.StepSEO, domain.ActionRegenerate}:          s.handleSEOGenerate,
		{domain.StepSEO, domain.ActionApprove}:             s.handleSEOApprove,
	}

	return s
}

// HandleStep validates and executes one step request.
func (s *ProgressService) HandleStep(ctx context.Context, req *domain.StepRequest) (*StepResult, error) {
	if err := s.validator.ValidateStepRequest(req); err != nil {
		return nil, validationErrorFrom(err)
	}

	handler, ok := s.table[stepAction{step: req.Step, action: req.Action}]
	if !ok {
		return nil, ErrInvalidStepAction
	}

	start := time.Now()
	result, err := s.dispatch(ctx, req, handler)
	metrics.ObserveStepRequest(string(req.Step), string(req.Action), classify(err), time.Since(start).Seconds())
	return result, err
}

func (s *ProgressService) dispatch(ctx context.Context, req *domain.StepRequest, handler stepHandler) (*StepResult, error) {
	// Without a draft ID this is the creating headings generation; there is
	// nothing to lock or load yet.
	if req.DraftID == "" {
		return handler(ctx, req, nil)
	}

	unlock := s.locks.acquire(req.DraftID)
	defer unlock()

	draft, err := s.drafts.Get(ctx, req.DraftID)
	if err != nil {
		return nil, &StoreError{Op: "load", Err: err}
	}
	if draft == nil {
		return nil, ErrDraftNotFound
	}

	return handler(ctx, req, draft)
}

// GetDraft retrieves a draft snapshot by ID.
func (s *ProgressService) GetDraft(ctx context.Context, id string) (*domain.Draft, error) {
	draft, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, &StoreError{Op: "load", Err: err}
	}
	if draft == nil {
		return nil, ErrDraftNotFound
	}
	return draft, nil
}

// ListDrafts returns the most recently updated drafts.
func (s *ProgressService) ListDrafts(ctx context.Context, limit int) ([]domain.Draft, error) {
	drafts, err := s.drafts.List(ctx, limit)
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	return drafts, nil
}

func (s *ProgressService) handleHeadingsGenerate(ctx context.Context, req *domain.StepRequest, draft *domain.Draft) (*StepResult, error) {
	start := time.Now()
	plan, err := s.engine.GenerateHeadings(ctx, req.Prompt)
	metrics.ObserveEngineCall("headings", err == nil, time.Since(start).Seconds())
	if err != nil {
		return nil, &UpstreamError{Op: "headings generation", Err: err}
	}

	now := time.Now()
	created := draft == nil
	if created {
		draft = &domain.Draft{
			ID:              uuid.New().String(),
			LifecycleStatus: domain.LifecycleInProgress,
			Progress:        domain.NewGenerationProgress(len(plan.Headings)),
			CreatedAt:       now,
		}
	}

	draft.Topic = req.Prompt
	draft.Headings = plan.Headings
	draft.MergeSEOMetadata(map[string]any{
		"working_title": plan.SuggestedTitle,
		"focus_keyword": plan.FocusKeyword,
	})
	draft.Progress.HeadingsApproved = false
	draft.Progress.ResizeContentApproved(len(plan.Headings))
	draft.Progress.CurrentHeadingIndex = nil
	draft.UpdatedAt = now

	if created {
		if err := s.drafts.Create(ctx, draft); err != nil {
			return nil, &StoreError{Op: "create", Err: err}
		}
	} else {
		if err := s.drafts.Update(ctx, draft); err != nil {
			return nil, &StoreError{Op: "save", Err: err}
		}
	}

	logger.WithDraftID(draft.ID).Info("headings generated",
		slog.Int("heading_count", len(plan.Headings)),
		slog.String("title", plan.SuggestedTitle))

	return &StepResult{
		Draft:    draft,
		Step:     req.Step,
		Message:  "headings generated, awaiting review",
		Data:     plan,
		NextStep: domain.StepImages,
	}, nil
}

func (s *ProgressService) handleHeadingsApprove(ctx context.Context, req *domain.StepRequest, draft *domain.Draft) (*StepResult, error) {
	draft.Progress.HeadingsApproved = true
	draft.Progress.AdvanceTo(domain.StepImages)

	if err := s.drafts.UpdateProgress(ctx, draft.ID, draft.Progress); err != nil {
		return nil, &StoreError{Op: "save", Err: err}
	}

	return &StepResult{
		Draft:    draft,
		Step:     req.Step,
		Message:  "headings approved",
		NextStep: domain.StepImages,
	}, nil
}

func (s *ProgressService) handleImagesSaveDescriptions(ctx context.Context, req *domain.StepRequest, draft *domain.Draft) (*StepResult, error) {
	if draft.Progress.ImageDescriptions == nil {
		draft.Progress.ImageDescriptions = make(map[string]string, len(req.ImageDescriptions))
	}
	// Merged per heading key so a partial save never drops earlier entries.
	for key, desc := range req.ImageDescriptions {
		draft.Progress.ImageDescriptions[key] = desc
	}
	draft.Progress.AdvanceTo(domain.StepContent)

	if err := s.drafts.UpdateProgress(ctx, draft.ID, draft.Progress); err != nil {
		return nil, &StoreError{Op: "save", Err: err}
	}

	return &StepResult{
		Draft:    draft,
		Step:     req.Step,
		Message:  "image descriptions saved",
		NextStep: domain.StepContent,
	}, nil
}

func (s *ProgressService) handleContentGenerate(ctx context.Context, req *domain.StepRequest, draft *domain.Draft) (*StepResult, error) {
	index := *req.HeadingIndex
	if !draft.HeadingIndexInRange(index) {
		return nil, headingIndexError(index, len(draft.Headings))
	}

	heading := draft.Headings[index]
	start := time.Now()
	content, err := s.engine.GenerateSectionContent(ctx, draft.Topic, heading.Text, heading.Level, draft.FocusKeyword())
	metrics.ObserveEngineCall("content", err == nil, time.Since(start).Seconds())
	if err != nil {
		return nil, &UpstreamError{Op: "content generation", Err: err}
	}

	draft.Headings[index].Content = content
	draft.Progress.EnsureContentApproved(len(draft.Headings))
	// Regeneration reopens this heading's review gate.
	draft.Progress.ContentApproved[index] = false
	draft.Progress.CurrentHeadingIndex = &index

	if err := s.drafts.UpdateHeadingContent(ctx, draft.ID, index, content, draft.Progress); err != nil {
		return nil, &StoreError{Op: "save", Err: err}
	}

	logger.WithDraftID(draft.ID).Info("content generated",
		slog.Int("heading_index", index),
		slog.Int("heading_count", len(draft.Headings)))

	isLast := draft.IsLastHeading(index)
	next := domain.StepContent
	if isLast {
		next = domain.StepSummary
	}

	return &StepResult{
		Draft:         draft,
		Step:          req.Step,
		Message:       fmt.Sprintf("content generated for heading %d", index),
		Data:          map[string]any{"heading_index": index, "content": content},
		NextStep:      next,
		IsLastHeading: &isLast,
	}, nil
}

func (s *ProgressService) handleContentApprove(ctx context.Context, req *domain.StepRequest, draft *domain.Draft) (*StepResult, error) {
	index := *req.HeadingIndex
	if !draft.HeadingIndexInRange(index) {
		return nil, headingIndexError(index, len(draft.Headings))
	}

	draft.Progress.EnsureContentApproved(len(draft.Headings))
	draft.Progress.ContentApproved[index] = true
	draft.Progress.CurrentHeadingIndex = &index

	isLast := draft.IsLastHeading(index)
	var nextIndex *int
	next := domain.StepContent
	if isLast {
		draft.Progress.AdvanceTo(domain.StepSummary)
		next = domain.StepSummary
	} else {
		n := index + 1
		nextIndex = &n
	}

	if err := s.drafts.UpdateProgress(ctx, draft.ID, draft.Progress); err != nil {
		return nil, &StoreError{Op: "save", Err: err}
	}

	return &StepResult{
		Draft:            draft,
		Step:             req.Step,
		Message:          fmt.Sprintf("content approved for heading %d", index),
		NextStep:         next,
		IsLastHeading:    &isLast,
		NextHeadingIndex: nextIndex,
	}, nil
}

func (s *ProgressService) handleSummaryGenerate(ctx context.Context, req *domain.StepRequest, draft *domain.Draft) (*StepResult, error) {
	start := time.Now()
	summary, err := s.engine.GenerateSummary(ctx, draft.Topic, draft.Title(), draft.FocusKeyword())
	metrics.ObserveEngineCall("summary", err == nil, time.Since(start).Seconds())
	if err != nil {
		return nil, &UpstreamError{Op: "summary generation", Err: err}
	}

	draft.Summary = &summary
	draft.Progress.SummaryApproved = false
	draft.UpdatedAt = time.Now()

	if err := s.drafts.Update(ctx, draft); err != nil {
		return nil, &StoreError{Op: "save", Err: err}
	}

	return &StepResult{
		Draft:    draft,
		Step:     req.Step,
		Message:  "summary generated, awaiting review",
		Data:     map[string]any{"summary": summary},
		NextStep: domain.StepConclusion,
	}, nil
}

func (s *ProgressService) handleSummaryApprove(ctx context.Context, req *domain.StepRequest, draft *domain.Draft) (*StepResult, error) {
	draft.Progress.SummaryApproved = true
	draft.Progress.AdvanceTo(domain.StepConclusion)

	if err := s.drafts.UpdateProgress(ctx, draft.ID, draft.Progress); err != nil {
		return nil, &StoreError{Op: "save", Err: err}
	}

	return &StepResult{
		Draft:    draft,
		Step:     req.Step,
		Message:  "summary approved",
		NextStep: domain.StepConclusion,
	}, nil
}

func (s *ProgressService) handleConclusionGenerate(ctx context.Context, req *domain.StepRequest, draft *domain.Draft) (*StepResult, error) {
	start := time.Now()
	conclusion, err := s.engine.GenerateConclusion(ctx, draft.Topic, draft.Title(), draft.FocusKeyword(), draft.Headings)
	metrics.ObserveEngineCall("conclusion", err == nil, time.Since(start).Seconds())
	if err != nil {
		return nil, &UpstreamError{Op: "conclusion generation", Err: err}
	}

	draft.Conclusion = &conclusion
	draft.Progress.ConclusionApproved = false
	draft.UpdatedAt = time.Now()

	if err := s.drafts.Update(ctx, draft); err != nil {
		return nil, &StoreError{Op: "save", Err: err}
	}

	return &StepResult{
		Draft:    draft,
		Step:     req.Step,
		Message:  "conclusion generated, awaiting review",
		Data:     map[string]any{"conclusion": conclusion},
		NextStep: domain.StepFAQ,
	}, nil
}

func (s *ProgressService) handleConclusionApprove(ctx context.Context, req *domain.StepRequest, draft *domain.Draft) (*StepResult, error) {
	draft.Progress.ConclusionApproved = true
	draft.Progress.AdvanceTo(domain.StepFAQ)

	if err := s.drafts.UpdateProgress(ctx, draft.ID, draft.Progress); err != nil {
		return nil, &StoreError{Op: "save", Err: err}
	}

	return &StepResult{
		Draft:    draft,
		Step:     req.Step,
		Message:  "conclusion approved",
		NextStep: domain.StepFAQ,
	}, nil
}

func (s *ProgressService) handleFAQGenerate(ctx context.Context, req *domain.StepRequest, draft *domain.Draft) (*StepResult, error) {
	start := time.Now()
	faqs, err := s.engine.GenerateFAQs(ctx, draft.Topic, draft.FocusKeyword(), draft.Headings)
	metrics.ObserveEngineCall("faq", err == nil, time.Since(start).Seconds())
	if err != nil {
		return nil, &UpstreamError{Op: "faq generation", Err: err}
	}

	draft.FAQs = faqs
	draft.Progress.FAQApproved = false
	draft.UpdatedAt = time.Now()

	if err := s.drafts.Update(ctx, draft); err != nil {
		return nil, &StoreError{Op: "save", Err: err}
	}

	return &StepResult{
		Draft:    draft,
		Step:     req.Step,
		Message:  "faq generated, awaiting review",
		Data:     faqs,
		NextStep: domain.StepSEO,
	}, nil
}

func (s *ProgressService) handleFAQApprove(ctx context.Context, req *domain.StepRequest, draft *domain.Draft) (*StepResult, error) {
	draft.Progress.FAQApproved = true
	draft.Progress.AdvanceTo(domain.StepSEO)

	if err := s.drafts.UpdateProgress(ctx, draft.ID, draft.Progress); err != nil {
		return nil, &StoreError{Op: "save", Err: err}
	}

	return &StepResult{
		Draft:    draft,
		Step:     req.Step,
		Message:  "faq approved",
		NextStep: domain.StepSEO,
	}, nil
}

func (s *ProgressService) handleSEOGenerate(ctx context.Context, req *domain.StepRequest, draft *domain.Draft) (*StepResult, error) {
	start := time.Now()
	fields, err := s.engine.GenerateSEOMetadata(ctx, draft.Topic, draft.Title(), draft.Headings, draft.FAQs)
	metrics.ObserveEngineCall("seo", err == nil, time.Since(start).Seconds())
	if err != nil {
		return nil, &UpstreamError{Op: "seo generation", Err: err}
	}

	// Merged into the existing metadata, never wholesale-replaced.
	draft.MergeSEOMetadata(fields)
	draft.Progress.SEOApproved = false
	draft.UpdatedAt = time.Now()

	if err := s.drafts.Update(ctx, draft); err != nil {
		return nil, &StoreError{Op: "save", Err: err}
	}

	return &StepResult{
		Draft:    draft,
		Step:     req.Step,
		Message:  "seo metadata generated, awaiting review",
		Data:     fields,
		NextStep: domain.StepCompleted,
	}, nil
}

// handleSEOApprove is the single terminal transition: it marks the last
// gate, compiles the draft, and completes the lifecycle.
func (s *ProgressService) handleSEOApprove(ctx context.Context, req *domain.StepRequest, draft *domain.Draft) (*StepResult, error) {
	p := &draft.Progress
	if !(p.HeadingsApproved && p.SummaryApproved && p.ConclusionApproved && p.FAQApproved) {
		return nil, &ValidationError{
			Field:  "progress",
			Reason: "all prior stages must be approved before completion",
		}
	}

	p.SEOApproved = true

	start := time.Now()
	output, err := s.compiler.Compile(ctx, draft)
	metrics.ObserveCompile(err == nil, time.Since(start).Seconds())
	if err != nil {
		return nil, &UpstreamError{Op: "compile", Err: err}
	}

	draft.CompiledOutput = &output
	p.AdvanceTo(domain.StepCompleted)
	draft.LifecycleStatus = domain.LifecycleCompleted
	draft.UpdatedAt = time.Now()

	if err := s.drafts.Update(ctx, draft); err != nil {
		return nil, &StoreError{Op: "save", Err: err}
	}

	logger.WithDraftID(draft.ID).Info("draft compiled and completed")

	return &StepResult{
		Draft:   draft,
		Step:    req.Step,
		Message: "seo approved, draft compiled and completed",
		Data:    map[string]any{"compiled_output": output},
	}, nil
}

func headingIndexError(index, count int) error {
	return &ValidationError{
		Field:  "heading_index",
		Reason: fmt.Sprintf("heading_index %d out of range [0, %d)", index, count),
	}
}

// validationErrorFrom converts an ozzo validation result into the
// controller's validation error, keeping the first offending field name.
func validationErrorFrom(err error) error {
	var ve validation.Errors
	if errors.As(err, &ve) {
		for field, fieldErr := range ve {
			return &ValidationError{Field: field, Reason: fieldErr.Error()}
		}
	}
	return &ValidationError{Field: "request", Reason: err.Error()}
}

// classify maps an error to a metrics result label.
func classify(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrDraftNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidStepAction):
		return "invalid_combination"
	default:
		var ve *ValidationError
		var ue *UpstreamError
		var se *StoreError
		switch {
		case errors.As(err, &ve):
			return "validation_error"
		case errors.As(err, &ue):
			return "upstream_error"
		case errors.As(err, &se):
			return "store_error"
		}
		return "error"
	}
}
