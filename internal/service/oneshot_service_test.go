package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-content-pipeline/internal/domain"
	"blog-content-pipeline/internal/generation"
	"blog-content-pipeline/internal/mocks"
	"blog-content-pipeline/internal/service"
	"blog-content-pipeline/internal/validator"
)

type oneShotFixture struct {
	engine   *mocks.MockEngine
	compiler *mocks.MockCompiler
	svc      *service.OneShotService
}

func newOneShotFixture(t *testing.T) *oneShotFixture {
	engine := mocks.NewMockEngine(t)
	comp := mocks.NewMockCompiler(t)
	return &oneShotFixture{
		engine:   engine,
		compiler: comp,
		svc:      service.NewOneShotService(engine, comp, validator.NewValidator()),
	}
}

func TestOneShot_Generate(t *testing.T) {
	f := newOneShotFixture(t)
	topic := "zero trust networking"

	plan := &generation.HeadingPlan{
		Headings: []domain.Heading{
			{ID: "h0", Text: "Why perimeters fail", Level: 2},
			{ID: "h1", Text: "Identity as the new edge", Level: 2},
		},
		SuggestedTitle: "Zero Trust, Explained",
		FocusKeyword:   "zero trust",
	}

	f.engine.EXPECT().GenerateHeadings(mock.Anything, topic).Return(plan, nil)
	f.engine.EXPECT().GenerateSectionContent(mock.Anything, topic, "Why perimeters fail", 2, "zero trust").
		Return("Perimeter content.", nil)
	f.engine.EXPECT().GenerateSectionContent(mock.Anything, topic, "Identity as the new edge", 2, "zero trust").
		Return("Identity content.", nil)
	f.engine.EXPECT().GenerateSummary(mock.Anything, topic, "Zero Trust, Explained", "zero trust").
		Return("A summary.", nil)
	f.engine.EXPECT().GenerateConclusion(mock.Anything, topic, "Zero Trust, Explained", "zero trust", mock.Anything).
		Return("A conclusion.", nil)
	f.engine.EXPECT().GenerateFAQs(mock.Anything, topic, "zero trust", mock.Anything).
		Return([]domain.FAQItem{{Question: "Where to start?", Answer: "With identity."}}, nil)
	f.engine.EXPECT().GenerateSEOMetadata(mock.Anything, topic, "Zero Trust, Explained", mock.Anything, mock.Anything).
		Return(map[string]any{"meta_description": "All about zero trust."}, nil)
	f.compiler.EXPECT().Compile(mock.Anything, mock.AnythingOfType("*domain.Draft")).
		Return("<h1>Zero Trust, Explained</h1>", nil)

	draft, err := f.svc.Generate(context.Background(), topic)
	require.NoError(t, err)
	require.NotNil(t, draft)

	assert.Equal(t, topic, draft.Topic)
	assert.Equal(t, "Perimeter content.", draft.Headings[0].Content)
	assert.Equal(t, "Identity content.", draft.Headings[1].Content)
	require.NotNil(t, draft.Summary)
	assert.Equal(t, "A summary.", *draft.Summary)
	require.NotNil(t, draft.Conclusion)
	require.Len(t, draft.FAQs, 1)
	assert.Equal(t, "All about zero trust.", draft.SEOMetadata["meta_description"])
	assert.Equal(t, "Zero Trust, Explained", draft.SEOMetadata["working_title"])
	require.NotNil(t, draft.CompiledOutput)
	assert.Equal(t, "<h1>Zero Trust, Explained</h1>", *draft.CompiledOutput)

	// The result reads as a fully reviewed, completed draft.
	assert.Equal(t, domain.LifecycleCompleted, draft.LifecycleStatus)
	assert.Equal(t, domain.StepCompleted, draft.Progress.CurrentStep)
	assert.True(t, draft.AllStagesApproved())
	assert.True(t, draft.Progress.AllContentApproved())
}

// The fan-out goroutines share the headings slice; section bodies must not
// land in it until the whole group is done, so concurrent readers only ever
// see the immutable outline.
func TestOneShot_FanOutReadsOutlineOnly(t *testing.T) {
	f := newOneShotFixture(t)
	topic := "event sourcing"

	plan := &generation.HeadingPlan{
		Headings: []domain.Heading{
			{ID: "h0", Text: "Events over state", Level: 2},
			{ID: "h1", Text: "Replaying history", Level: 2},
		},
		SuggestedTitle: "Event Sourcing in Practice",
		FocusKeyword:   "event sourcing",
	}

	var conclusionSaw, faqSaw []domain.Heading

	f.engine.EXPECT().GenerateHeadings(mock.Anything, topic).Return(plan, nil)
	f.engine.EXPECT().GenerateSectionContent(mock.Anything, topic, mock.Anything, 2, "event sourcing").
		Return("Section body.", nil).Twice()
	f.engine.EXPECT().GenerateSummary(mock.Anything, topic, "Event Sourcing in Practice", "event sourcing").
		Return("A summary.", nil)
	f.engine.EXPECT().GenerateConclusion(mock.Anything, topic, "Event Sourcing in Practice", "event sourcing", mock.Anything).
		RunAndReturn(func(_ context.Context, _, _, _ string, headings []domain.Heading) (string, error) {
			conclusionSaw = append([]domain.Heading(nil), headings...)
			return "A conclusion.", nil
		})
	f.engine.EXPECT().GenerateFAQs(mock.Anything, topic, "event sourcing", mock.Anything).
		RunAndReturn(func(_ context.Context, _, _ string, headings []domain.Heading) ([]domain.FAQItem, error) {
			faqSaw = append([]domain.Heading(nil), headings...)
			return []domain.FAQItem{{Question: "q", Answer: "a"}}, nil
		})
	f.engine.EXPECT().GenerateSEOMetadata(mock.Anything, topic, "Event Sourcing in Practice", mock.Anything, mock.Anything).
		Return(map[string]any{"meta_description": "d"}, nil)
	f.compiler.EXPECT().Compile(mock.Anything, mock.AnythingOfType("*domain.Draft")).
		Return("<h1>done</h1>", nil)

	draft, err := f.svc.Generate(context.Background(), topic)
	require.NoError(t, err)

	for _, h := range conclusionSaw {
		assert.Empty(t, h.Content, "conclusion call observed a section body for %s", h.ID)
	}
	for _, h := range faqSaw {
		assert.Empty(t, h.Content, "faq call observed a section body for %s", h.ID)
	}

	// The bodies are attached once the group has finished.
	assert.Equal(t, "Section body.", draft.Headings[0].Content)
	assert.Equal(t, "Section body.", draft.Headings[1].Content)
}

func TestOneShot_TopicValidation(t *testing.T) {
	f := newOneShotFixture(t)

	for _, topic := range []string{"", "ab"} {
		_, err := f.svc.Generate(context.Background(), topic)
		require.Error(t, err, "topic %q", topic)

		var ve *service.ValidationError
		assert.ErrorAs(t, err, &ve)
	}
}

func TestOneShot_SectionFailureAborts(t *testing.T) {
	f := newOneShotFixture(t)
	topic := "postgres partitioning"

	plan := &generation.HeadingPlan{
		Headings:       []domain.Heading{{ID: "h0", Text: "Range partitions", Level: 2}},
		SuggestedTitle: "Partitioning Postgres",
		FocusKeyword:   "partitioning",
	}

	f.engine.EXPECT().GenerateHeadings(mock.Anything, topic).Return(plan, nil)
	f.engine.EXPECT().GenerateSectionContent(mock.Anything, topic, "Range partitions", 2, "partitioning").
		Return("", errors.New("rate limited"))
	// Summary, conclusion and FAQ run in the same group; they may or may not
	// be reached before the group cancels, so tolerate either.
	f.engine.EXPECT().GenerateSummary(mock.Anything, topic, "Partitioning Postgres", "partitioning").
		Return("a summary", nil).Maybe()
	f.engine.EXPECT().GenerateConclusion(mock.Anything, topic, "Partitioning Postgres", "partitioning", mock.Anything).
		Return("a conclusion", nil).Maybe()
	f.engine.EXPECT().GenerateFAQs(mock.Anything, topic, "partitioning", mock.Anything).
		Return([]domain.FAQItem{{Question: "q", Answer: "a"}}, nil).Maybe()

	_, err := f.svc.Generate(context.Background(), topic)
	require.Error(t, err)

	var ue *service.UpstreamError
	require.ErrorAs(t, err, &ue)
}

func TestOneShot_HeadingsFailureAborts(t *testing.T) {
	f := newOneShotFixture(t)

	f.engine.EXPECT().GenerateHeadings(mock.Anything, "some valid topic").
		Return(nil, errors.New("upstream down"))

	_, err := f.svc.Generate(context.Background(), "some valid topic")
	require.Error(t, err)

	var ue *service.UpstreamError
	require.ErrorAs(t, err, &ue)
}
