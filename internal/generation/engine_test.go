package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLLM returns canned completions keyed by a fragment of the user message.
type stubLLM struct {
	response string
	err      error
	prompts  []Prompt
}

func (s *stubLLM) Complete(ctx context.Context, prompt Prompt) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func TestGenerateHeadings(t *testing.T) {
	llm := &stubLLM{response: `{
		"headings": [
			{"text": "Getting started", "level": 2},
			{"text": "Advanced usage", "level": 9},
			{"text": "Pitfalls", "level": 3}
		],
		"suggested_title": "A Field Guide",
		"focus_keyword": "field guide"
	}`}
	engine := NewLLMEngine(llm, nil)

	plan, err := engine.GenerateHeadings(context.Background(), "field guides")
	require.NoError(t, err)

	require.Len(t, plan.Headings, 3)
	assert.Equal(t, "A Field Guide", plan.SuggestedTitle)
	assert.Equal(t, "field guide", plan.FocusKeyword)

	// IDs are assigned positionally.
	assert.Equal(t, "h0", plan.Headings[0].ID)
	assert.Equal(t, "h1", plan.Headings[1].ID)
	assert.Equal(t, "h2", plan.Headings[2].ID)

	// Out-of-range levels are clamped to the default section level.
	assert.Equal(t, 2, plan.Headings[0].Level)
	assert.Equal(t, 2, plan.Headings[1].Level)
	assert.Equal(t, 3, plan.Headings[2].Level)

	// The topic reaches the model.
	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0].User, "field guides")
}

func TestGenerateHeadings_StripsCodeFence(t *testing.T) {
	llm := &stubLLM{response: "```json\n" + `{"headings":[{"text":"One","level":2}],"suggested_title":"T","focus_keyword":"k"}` + "\n```"}
	engine := NewLLMEngine(llm, nil)

	plan, err := engine.GenerateHeadings(context.Background(), "anything")
	require.NoError(t, err)
	require.Len(t, plan.Headings, 1)
	assert.Equal(t, "One", plan.Headings[0].Text)
}

func TestGenerateHeadings_EmptyOutline(t *testing.T) {
	llm := &stubLLM{response: `{"headings":[],"suggested_title":"T","focus_keyword":"k"}`}
	engine := NewLLMEngine(llm, nil)

	_, err := engine.GenerateHeadings(context.Background(), "anything")
	assert.Error(t, err)
}

func TestGenerateHeadings_MalformedJSON(t *testing.T) {
	llm := &stubLLM{response: "Sure! Here's your outline: ..."}
	engine := NewLLMEngine(llm, nil)

	_, err := engine.GenerateHeadings(context.Background(), "anything")
	assert.Error(t, err)
}

func TestGenerateSectionContent(t *testing.T) {
	llm := &stubLLM{response: "  Some body text.  \n"}
	engine := NewLLMEngine(llm, nil)

	content, err := engine.GenerateSectionContent(context.Background(), "topic", "Heading", 2, "keyword")
	require.NoError(t, err)
	assert.Equal(t, "Some body text.", content)

	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0].User, "Heading")
	assert.Contains(t, llm.prompts[0].User, "keyword")
}

func TestGenerateSectionContent_Empty(t *testing.T) {
	llm := &stubLLM{response: "   "}
	engine := NewLLMEngine(llm, nil)

	_, err := engine.GenerateSectionContent(context.Background(), "topic", "Heading", 2, "")
	assert.Error(t, err)
}

func TestGenerateFAQs(t *testing.T) {
	llm := &stubLLM{response: `[{"question":"Why?","answer":"Because."}]`}
	engine := NewLLMEngine(llm, nil)

	faqs, err := engine.GenerateFAQs(context.Background(), "topic", "kw", nil)
	require.NoError(t, err)
	require.Len(t, faqs, 1)
	assert.Equal(t, "Why?", faqs[0].Question)
}

func TestGenerateSEOMetadata(t *testing.T) {
	llm := &stubLLM{response: `{"meta_title":"T","meta_description":"D","slug":"t","keywords":"a,b"}`}
	engine := NewLLMEngine(llm, nil)

	fields, err := engine.GenerateSEOMetadata(context.Background(), "topic", "Title", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "T", fields["meta_title"])
	assert.Equal(t, "t", fields["slug"])
}

func TestEngine_LLMErrorPropagates(t *testing.T) {
	llm := &stubLLM{err: errors.New("connection reset")}
	engine := NewLLMEngine(llm, nil)

	_, err := engine.GenerateSummary(context.Background(), "topic", "Title", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, stripCodeFence(tc.in))
	}
}
