// Package compiler turns a fully-approved draft into a single rendered
// HTML artifact.
package compiler

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"

	"blog-content-pipeline/internal/domain"
)

// Compiler produces the rendered output artifact for a draft.
type Compiler interface {
	Compile(ctx context.Context, draft *domain.Draft) (string, error)
}

// HTMLCompiler assembles the draft into markdown, renders it with goldmark,
// and post-processes the HTML: heading anchors from the outline IDs and
// image placeholders from the saved image descriptions.
type HTMLCompiler struct{}

// NewHTMLCompiler creates a new HTMLCompiler.
func NewHTMLCompiler() *HTMLCompiler {
	return &HTMLCompiler{}
}

// Compile renders the draft. The controller only calls this once every
// stage has passed its review gate.
func (c *HTMLCompiler) Compile(ctx context.Context, draft *domain.Draft) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	md := assembleMarkdown(draft)

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	html, err := postProcess(buf.String(), draft)
	if err != nil {
		return "", fmt.Errorf("post-process html: %w", err)
	}

	return html, nil
}

func assembleMarkdown(draft *domain.Draft) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", draft.Title())

	if draft.Summary != nil && *draft.Summary != "" {
		fmt.Fprintf(&sb, "%s\n\n", *draft.Summary)
	}

	for _, h := range draft.Headings {
		level := h.Level
		if level < 1 || level > 6 {
			level = 2
		}
		fmt.Fprintf(&sb, "%s %s\n\n", strings.Repeat("#", level), h.Text)
		if h.Content != "" {
			fmt.Fprintf(&sb, "%s\n\n", h.Content)
		}
	}

	if draft.Conclusion != nil && *draft.Conclusion != "" {
		fmt.Fprintf(&sb, "## Conclusion\n\n%s\n\n", *draft.Conclusion)
	}

	if len(draft.FAQs) > 0 {
		sb.WriteString("## Frequently Asked Questions\n\n")
		for _, f := range draft.FAQs {
			fmt.Fprintf(&sb, "### %s\n\n%s\n\n", f.Question, f.Answer)
		}
	}

	return sb.String()
}

// postProcess anchors each outline heading with its stable ID and appends
// an image placeholder where the review flow saved a description.
func postProcess(html string, draft *domain.Draft) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	// The first len(Headings) section headings of the document correspond to
	// the outline, in order; Conclusion and FAQ headings come after them.
	sections := doc.Find("h2, h3, h4, h5, h6")
	for i, h := range draft.Headings {
		if i >= sections.Length() {
			break
		}
		sel := sections.Eq(i)
		sel.SetAttr("id", h.ID)

		if desc, ok := draft.Progress.ImageDescriptions[h.ID]; ok && desc != "" {
			figure := fmt.Sprintf(
				`<figure class="section-image" data-heading="%s"><img alt="%s"/><figcaption>%s</figcaption></figure>`,
				h.ID, desc, desc,
			)
			sel.AfterHtml(figure)
		}
	}

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(out), nil
}
