package generation

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"blog-content-pipeline/internal/domain"
)

// PromptTemplates holds the system instructions for each generation stage.
// The user message is assembled from the draft context at call time.
// Any field left empty in an override file falls back to the default.
type PromptTemplates struct {
	Headings   string `yaml:"headings"`
	Content    string `yaml:"content"`
	Summary    string `yaml:"summary"`
	Conclusion string `yaml:"conclusion"`
	FAQ        string `yaml:"faq"`
	SEO        string `yaml:"seo"`
}

// DefaultPromptTemplates returns the built-in stage instructions.
func DefaultPromptTemplates() *PromptTemplates {
	return &PromptTemplates{
		Headings: "You are a content strategist. Produce a blog post outline as JSON only, no prose. " +
			`Schema: {"headings":[{"text":string,"level":int}],"suggested_title":string,"focus_keyword":string}. ` +
			"Levels are 1-6; use 2 for main sections and 3 for subsections. Produce 4-8 headings.",
		Content: "You are a professional writer. Write the body text for one section of a blog post. " +
			"Output plain markdown paragraphs only; do not repeat the section heading and do not add new headings.",
		Summary: "You are a professional editor. Write a 2-3 sentence introduction summary for the blog post. " +
			"Output plain text only.",
		Conclusion: "You are a professional editor. Write a short conclusion that ties the listed sections together " +
			"and ends with a call to action. Output plain text only.",
		FAQ: "You are a content strategist. Produce 3-5 frequently asked questions with concise answers as JSON only. " +
			`Schema: [{"question":string,"answer":string}].`,
		SEO: "You are an SEO specialist. Produce metadata for the blog post as a flat JSON object only. " +
			`Include at least "meta_title", "meta_description", "slug", and "keywords" (comma separated).`,
	}
}

// LoadPromptTemplates reads stage instruction overrides from a YAML file.
// An empty path returns the defaults; empty fields keep their defaults.
func LoadPromptTemplates(path string) (*PromptTemplates, error) {
	templates := DefaultPromptTemplates()
	if path == "" {
		return templates, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompts file: %w", err)
	}

	var overrides PromptTemplates
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse prompts file: %w", err)
	}

	if overrides.Headings != "" {
		templates.Headings = overrides.Headings
	}
	if overrides.Content != "" {
		templates.Content = overrides.Content
	}
	if overrides.Summary != "" {
		templates.Summary = overrides.Summary
	}
	if overrides.Conclusion != "" {
		templates.Conclusion = overrides.Conclusion
	}
	if overrides.FAQ != "" {
		templates.FAQ = overrides.FAQ
	}
	if overrides.SEO != "" {
		templates.SEO = overrides.SEO
	}

	return templates, nil
}

func (t *PromptTemplates) headingsPrompt(topic string) Prompt {
	return Prompt{
		System: t.Headings,
		User:   fmt.Sprintf("Topic: %s\nProduce the outline JSON.", topic),
	}
}

func (t *PromptTemplates) contentPrompt(topic, headingText string, level int, focusKeyword string) Prompt {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Blog topic: %s\n", topic)
	fmt.Fprintf(&sb, "Section heading (level %d): %s\n", level, headingText)
	if focusKeyword != "" {
		fmt.Fprintf(&sb, "Focus keyword to weave in naturally: %s\n", focusKeyword)
	}
	sb.WriteString("Write the section body.")
	return Prompt{System: t.Content, User: sb.String()}
}

func (t *PromptTemplates) summaryPrompt(topic, title, focusKeyword string) Prompt {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Blog topic: %s\nWorking title: %s\n", topic, title)
	if focusKeyword != "" {
		fmt.Fprintf(&sb, "Focus keyword: %s\n", focusKeyword)
	}
	sb.WriteString("Write the summary.")
	return Prompt{System: t.Summary, User: sb.String()}
}

func (t *PromptTemplates) conclusionPrompt(topic, title, focusKeyword string, headings []domain.Heading) Prompt {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Blog topic: %s\nWorking title: %s\n", topic, title)
	if focusKeyword != "" {
		fmt.Fprintf(&sb, "Focus keyword: %s\n", focusKeyword)
	}
	sb.WriteString("Sections covered:\n")
	for _, h := range headings {
		fmt.Fprintf(&sb, "- %s\n", h.Text)
	}
	sb.WriteString("Write the conclusion.")
	return Prompt{System: t.Conclusion, User: sb.String()}
}

func (t *PromptTemplates) faqPrompt(topic, focusKeyword string, headings []domain.Heading) Prompt {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Blog topic: %s\n", topic)
	if focusKeyword != "" {
		fmt.Fprintf(&sb, "Focus keyword: %s\n", focusKeyword)
	}
	sb.WriteString("Sections covered:\n")
	for _, h := range headings {
		fmt.Fprintf(&sb, "- %s\n", h.Text)
	}
	sb.WriteString("Produce the FAQ JSON.")
	return Prompt{System: t.FAQ, User: sb.String()}
}

func (t *PromptTemplates) seoPrompt(topic, title string, headings []domain.Heading, faqs []domain.FAQItem) Prompt {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Blog topic: %s\nWorking title: %s\n", topic, title)
	sb.WriteString("Sections:\n")
	for _, h := range headings {
		fmt.Fprintf(&sb, "- %s\n", h.Text)
	}
	if len(faqs) > 0 {
		sb.WriteString("FAQ questions:\n")
		for _, f := range faqs {
			fmt.Fprintf(&sb, "- %s\n", f.Question)
		}
	}
	sb.WriteString("Produce the metadata JSON.")
	return Prompt{System: t.SEO, User: sb.String()}
}
