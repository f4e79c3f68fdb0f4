package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"blog-content-pipeline/internal/compiler"
	"blog-content-pipeline/internal/domain"
	"blog-content-pipeline/internal/generation"
	"blog-content-pipeline/internal/logger"
	"blog-content-pipeline/internal/metrics"
	"blog-content-pipeline/internal/validator"
)

// OneShotService produces a complete document for a topic in a single call.
// Nothing is persisted and no review gates apply; the result exists only in
// the response. Stage calls that do not depend on each other run
// concurrently.
type OneShotService struct {
	engine    generation.Engine
	compiler  compiler.Compiler
	validator *validator.Validator
}

// NewOneShotService creates a new OneShotService.
func NewOneShotService(engine generation.Engine, comp compiler.Compiler, v *validator.Validator) *OneShotService {
	return &OneShotService{
		engine:    engine,
		compiler:  comp,
		validator: v,
	}
}

// Generate runs the full pipeline for topic without persistence or gates.
func (s *OneShotService) Generate(ctx context.Context, topic string) (*domain.Draft, error) {
	if err := s.validator.ValidateTopic(topic); err != nil {
		return nil, validationErrorFrom(err)
	}

	start := time.Now()
	draft, err := s.generate(ctx, topic)
	metrics.ObserveOneShot(err == nil, time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	logger.WithDraftID(draft.ID).Info("one-shot generation finished",
		slog.Duration("elapsed", time.Since(start).Round(time.Millisecond)))
	return draft, nil
}

func (s *OneShotService) generate(ctx context.Context, topic string) (*domain.Draft, error) {
	plan, err := s.engine.GenerateHeadings(ctx, topic)
	if err != nil {
		return nil, &UpstreamError{Op: "headings generation", Err: err}
	}

	now := time.Now()
	draft := &domain.Draft{
		ID:              uuid.New().String(),
		Topic:           topic,
		Headings:        plan.Headings,
		LifecycleStatus: domain.LifecycleCompleted,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	draft.MergeSEOMetadata(map[string]any{
		"working_title": plan.SuggestedTitle,
		"focus_keyword": plan.FocusKeyword,
	})

	// Section content, summary, conclusion and FAQ only depend on the
	// outline, so they run concurrently. Section bodies land in a separate
	// slice and are attached once the group finishes; during the fan-out the
	// headings are only ever read.
	sections := make([]string, len(draft.Headings))
	g, gctx := errgroup.WithContext(ctx)

	for i, h := range draft.Headings {
		g.Go(func() error {
			content, err := s.engine.GenerateSectionContent(gctx, topic, h.Text, h.Level, draft.FocusKeyword())
			if err != nil {
				return &UpstreamError{Op: "content generation", Err: err}
			}
			sections[i] = content
			return nil
		})
	}

	g.Go(func() error {
		summary, err := s.engine.GenerateSummary(gctx, topic, draft.Title(), draft.FocusKeyword())
		if err != nil {
			return &UpstreamError{Op: "summary generation", Err: err}
		}
		draft.Summary = &summary
		return nil
	})

	g.Go(func() error {
		conclusion, err := s.engine.GenerateConclusion(gctx, topic, draft.Title(), draft.FocusKeyword(), draft.Headings)
		if err != nil {
			return &UpstreamError{Op: "conclusion generation", Err: err}
		}
		draft.Conclusion = &conclusion
		return nil
	})

	g.Go(func() error {
		faqs, err := s.engine.GenerateFAQs(gctx, topic, draft.FocusKeyword(), draft.Headings)
		if err != nil {
			return &UpstreamError{Op: "faq generation", Err: err}
		}
		draft.FAQs = faqs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range draft.Headings {
		draft.Headings[i].Content = sections[i]
	}

	// SEO metadata reads the FAQ list, so it waits for the group.
	fields, err := s.engine.GenerateSEOMetadata(ctx, topic, draft.Title(), draft.Headings, draft.FAQs)
	if err != nil {
		return nil, &UpstreamError{Op: "seo generation", Err: err}
	}
	draft.MergeSEOMetadata(fields)

	// Mark everything approved so the compiled document reflects a draft
	// that went through the full pipeline.
	draft.Progress = domain.GenerationProgress{
		CurrentStep:        domain.StepCompleted,
		HeadingsApproved:   true,
		SummaryApproved:    true,
		ConclusionApproved: true,
		FAQApproved:        true,
		SEOApproved:        true,
		ContentApproved:    allTrue(len(draft.Headings)),
	}

	output, err := s.compiler.Compile(ctx, draft)
	if err != nil {
		return nil, &UpstreamError{Op: "compile", Err: err}
	}
	draft.CompiledOutput = &output

	return draft, nil
}

func allTrue(n int) []bool {
	approved := make([]bool, n)
	for i := range approved {
		approved[i] = true
	}
	return approved
}
