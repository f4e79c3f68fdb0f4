package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"blog-content-pipeline/internal/domain"
)

// HeadingPlan is the output of the headings stage: the outline plus the
// title and keyword the model suggests for the whole post.
type HeadingPlan struct {
	Headings       []domain.Heading `json:"headings"`
	SuggestedTitle string           `json:"suggested_title"`
	FocusKeyword   string           `json:"focus_keyword"`
}

// Engine produces stage output from draft context. Implementations are
// stateless; every call is independent and may be slow or fail.
type Engine interface {
	GenerateHeadings(ctx context.Context, prompt string) (*HeadingPlan, error)
	GenerateSectionContent(ctx context.Context, topic, headingText string, level int, focusKeyword string) (string, error)
	GenerateSummary(ctx context.Context, topic, title, focusKeyword string) (string, error)
	GenerateConclusion(ctx context.Context, topic, title, focusKeyword string, headings []domain.Heading) (string, error)
	GenerateFAQs(ctx context.Context, topic, focusKeyword string, headings []domain.Heading) ([]domain.FAQItem, error)
	GenerateSEOMetadata(ctx context.Context, topic, title string, headings []domain.Heading, faqs []domain.FAQItem) (map[string]any, error)
}

// LLMEngine implements Engine on top of an LLMClient with one prompt per
// stage.
type LLMEngine struct {
	llm       LLMClient
	templates *PromptTemplates
}

// NewLLMEngine creates an engine. A nil templates argument uses the
// built-in prompts.
func NewLLMEngine(llm LLMClient, templates *PromptTemplates) *LLMEngine {
	if templates == nil {
		templates = DefaultPromptTemplates()
	}
	return &LLMEngine{llm: llm, templates: templates}
}

// GenerateHeadings produces the outline plan for a topic. Heading IDs are
// assigned positionally (h0, h1, ...) and stay stable for the life of the
// outline.
func (e *LLMEngine) GenerateHeadings(ctx context.Context, prompt string) (*HeadingPlan, error) {
	raw, err := e.llm.Complete(ctx, e.templates.headingsPrompt(prompt))
	if err != nil {
		return nil, fmt.Errorf("headings completion: %w", err)
	}

	var plan HeadingPlan
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &plan); err != nil {
		return nil, fmt.Errorf("parse headings response: %w", err)
	}
	if len(plan.Headings) == 0 {
		return nil, fmt.Errorf("headings response contained no headings")
	}

	for i := range plan.Headings {
		plan.Headings[i].ID = fmt.Sprintf("h%d", i)
		if plan.Headings[i].Level < 1 || plan.Headings[i].Level > 6 {
			plan.Headings[i].Level = 2
		}
		plan.Headings[i].Content = ""
	}

	return &plan, nil
}

// GenerateSectionContent produces the body text for one heading.
func (e *LLMEngine) GenerateSectionContent(ctx context.Context, topic, headingText string, level int, focusKeyword string) (string, error) {
	raw, err := e.llm.Complete(ctx, e.templates.contentPrompt(topic, headingText, level, focusKeyword))
	if err != nil {
		return "", fmt.Errorf("content completion: %w", err)
	}
	body := strings.TrimSpace(raw)
	if body == "" {
		return "", fmt.Errorf("content response was empty")
	}
	return body, nil
}

// GenerateSummary produces the introduction summary.
func (e *LLMEngine) GenerateSummary(ctx context.Context, topic, title, focusKeyword string) (string, error) {
	raw, err := e.llm.Complete(ctx, e.templates.summaryPrompt(topic, title, focusKeyword))
	if err != nil {
		return "", fmt.Errorf("summary completion: %w", err)
	}
	summary := strings.TrimSpace(raw)
	if summary == "" {
		return "", fmt.Errorf("summary response was empty")
	}
	return summary, nil
}

// GenerateConclusion produces the closing section.
func (e *LLMEngine) GenerateConclusion(ctx context.Context, topic, title, focusKeyword string, headings []domain.Heading) (string, error) {
	raw, err := e.llm.Complete(ctx, e.templates.conclusionPrompt(topic, title, focusKeyword, headings))
	if err != nil {
		return "", fmt.Errorf("conclusion completion: %w", err)
	}
	conclusion := strings.TrimSpace(raw)
	if conclusion == "" {
		return "", fmt.Errorf("conclusion response was empty")
	}
	return conclusion, nil
}

// GenerateFAQs produces the question/answer list.
func (e *LLMEngine) GenerateFAQs(ctx context.Context, topic, focusKeyword string, headings []domain.Heading) ([]domain.FAQItem, error) {
	raw, err := e.llm.Complete(ctx, e.templates.faqPrompt(topic, focusKeyword, headings))
	if err != nil {
		return nil, fmt.Errorf("faq completion: %w", err)
	}

	var faqs []domain.FAQItem
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &faqs); err != nil {
		return nil, fmt.Errorf("parse faq response: %w", err)
	}
	if len(faqs) == 0 {
		return nil, fmt.Errorf("faq response contained no items")
	}
	return faqs, nil
}

// GenerateSEOMetadata produces the metadata fields for the post.
func (e *LLMEngine) GenerateSEOMetadata(ctx context.Context, topic, title string, headings []domain.Heading, faqs []domain.FAQItem) (map[string]any, error) {
	raw, err := e.llm.Complete(ctx, e.templates.seoPrompt(topic, title, headings, faqs))
	if err != nil {
		return nil, fmt.Errorf("seo completion: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &fields); err != nil {
		return nil, fmt.Errorf("parse seo response: %w", err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("seo response contained no fields")
	}
	return fields, nil
}

// stripCodeFence removes a surrounding markdown code fence, which models
// emit even when asked for bare JSON.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
