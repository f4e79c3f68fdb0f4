package domain

import "time"

// Lifecycle statuses for a draft. The controller only ever moves a draft
// from in_progress to completed; deletion is handled elsewhere.
const (
	LifecycleInProgress = "in_progress"
	LifecycleCompleted  = "completed"
)

// Heading is one entry of a draft's flat outline. Hierarchy is derived from
// Level (1-6) at render time; there are no parent/child links.
type Heading struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Level   int    `json:"level"`
	Content string `json:"content,omitempty"`
}

// FAQItem is a generated question/answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GenerationProgress tracks where a draft is in the pipeline and which
// stages have passed their review gate.
type GenerationProgress struct {
	CurrentStep         Step              `json:"current_step"`
	HeadingsApproved    bool              `json:"headings_approved"`
	SummaryApproved     bool              `json:"summary_approved"`
	ConclusionApproved  bool              `json:"conclusion_approved"`
	FAQApproved         bool              `json:"faq_approved"`
	SEOApproved         bool              `json:"seo_approved"`
	ContentApproved     []bool            `json:"content_approved"`
	CurrentHeadingIndex *int              `json:"current_heading_index,omitempty"`
	ImageDescriptions   map[string]string `json:"image_descriptions,omitempty"`
}

// NewGenerationProgress returns the initial progress for a draft with the
// given number of headings.
func NewGenerationProgress(headingCount int) GenerationProgress {
	return GenerationProgress{
		CurrentStep:     StepHeadings,
		ContentApproved: make([]bool, headingCount),
	}
}

// ResizeContentApproved resizes ContentApproved to exactly n entries,
// resetting every entry to false. Called when headings are regenerated.
func (p *GenerationProgress) ResizeContentApproved(n int) {
	p.ContentApproved = make([]bool, n)
}

// EnsureContentApproved grows ContentApproved to at least n entries without
// discarding existing approvals.
func (p *GenerationProgress) EnsureContentApproved(n int) {
	for len(p.ContentApproved) < n {
		p.ContentApproved = append(p.ContentApproved, false)
	}
}

// AdvanceTo moves CurrentStep forward to step. The pipeline never moves
// backwards, so a target at or before the current step is a no-op.
func (p *GenerationProgress) AdvanceTo(step Step) {
	if p.CurrentStep.Before(step) {
		p.CurrentStep = step
	}
}

// AllContentApproved reports whether every heading's content gate has been
// passed.
func (p *GenerationProgress) AllContentApproved() bool {
	for _, approved := range p.ContentApproved {
		if !approved {
			return false
		}
	}
	return true
}

// Draft is the unit of work for the whole pipeline. It is created by the
// first headings generation and mutated in place by every subsequent step.
type Draft struct {
	ID              string             `json:"id"`
	Topic           string             `json:"topic"`
	Headings        []Heading          `json:"headings"`
	Summary         *string            `json:"summary,omitempty"`
	Conclusion      *string            `json:"conclusion,omitempty"`
	FAQs            []FAQItem          `json:"faqs,omitempty"`
	SEOMetadata     map[string]any     `json:"seo_metadata,omitempty"`
	CompiledOutput  *string            `json:"compiled_output,omitempty"`
	Progress        GenerationProgress `json:"progress"`
	LifecycleStatus string             `json:"lifecycle_status"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// Title returns the working title from SEO metadata, or the topic when no
// title has been suggested yet.
func (d *Draft) Title() string {
	if t, ok := d.SEOMetadata["working_title"].(string); ok && t != "" {
		return t
	}
	return d.Topic
}

// FocusKeyword returns the focus keyword from SEO metadata, if set.
func (d *Draft) FocusKeyword() string {
	if k, ok := d.SEOMetadata["focus_keyword"].(string); ok {
		return k
	}
	return ""
}

// MergeSEOMetadata merges fields into SEOMetadata without discarding
// existing entries. Later stages only ever add or overwrite named fields.
func (d *Draft) MergeSEOMetadata(fields map[string]any) {
	if d.SEOMetadata == nil {
		d.SEOMetadata = make(map[string]any, len(fields))
	}
	for k, v := range fields {
		d.SEOMetadata[k] = v
	}
}

// IsLastHeading reports whether index addresses the final heading.
func (d *Draft) IsLastHeading(index int) bool {
	return index == len(d.Headings)-1
}

// HeadingIndexInRange reports whether index is a valid heading position.
func (d *Draft) HeadingIndexInRange(index int) bool {
	return index >= 0 && index < len(d.Headings)
}

// AllStagesApproved reports whether every content-bearing stage has passed
// its review gate. Compilation requires this.
func (d *Draft) AllStagesApproved() bool {
	p := &d.Progress
	return p.HeadingsApproved && p.SummaryApproved && p.ConclusionApproved &&
		p.FAQApproved && p.SEOApproved
}
