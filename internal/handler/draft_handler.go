package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-content-pipeline/internal/domain"
	"blog-content-pipeline/internal/middleware"
	"blog-content-pipeline/internal/service"
)

const defaultListLimit = 50

// DraftHandler handles draft read endpoints.
type DraftHandler struct {
	progress service.ProgressServiceInterface
}

// NewDraftHandler creates a new DraftHandler.
func NewDraftHandler(progress service.ProgressServiceInterface) *DraftHandler {
	return &DraftHandler{progress: progress}
}

// DraftResponse represents a draft in the API response.
type DraftResponse struct {
	ID              string                    `json:"id"`
	Topic           string                    `json:"topic"`
	Headings        []domain.Heading          `json:"headings"`
	Summary         *string                   `json:"summary,omitempty"`
	Conclusion      *string                   `json:"conclusion,omitempty"`
	FAQs            []domain.FAQItem          `json:"faqs,omitempty"`
	SEOMetadata     map[string]any            `json:"seo_metadata,omitempty"`
	CompiledOutput  *string                   `json:"compiled_output,omitempty"`
	Progress        domain.GenerationProgress `json:"progress"`
	LifecycleStatus string                    `json:"lifecycle_status"`
	CreatedAt       string                    `json:"created_at"`
	UpdatedAt       string                    `json:"updated_at"`
}

// toDraftResponse converts a domain.Draft to a DraftResponse.
func toDraftResponse(d *domain.Draft) DraftResponse {
	return DraftResponse{
		ID:              d.ID,
		Topic:           d.Topic,
		Headings:        d.Headings,
		Summary:         d.Summary,
		Conclusion:      d.Conclusion,
		FAQs:            d.FAQs,
		SEOMetadata:     d.SEOMetadata,
		CompiledOutput:  d.CompiledOutput,
		Progress:        d.Progress,
		LifecycleStatus: d.LifecycleStatus,
		CreatedAt:       d.CreatedAt.Format(TimeFormat),
		UpdatedAt:       d.UpdatedAt.Format(TimeFormat),
	}
}

// GetDraft handles GET /api/v1/drafts/:id
func (h *DraftHandler) GetDraft(c *gin.Context) {
	id := c.Param("id")

	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	draft, err := h.progress.GetDraft(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDraftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
			return
		}
		log.Printf("[request_id=%s] Failed to get draft %s: %v", middleware.GetRequestID(c), id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve draft"})
		return
	}

	c.JSON(http.StatusOK, toDraftResponse(draft))
}

// ListDrafts handles GET /api/v1/drafts
func (h *DraftHandler) ListDrafts(c *gin.Context) {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 500 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer between 1 and 500"})
			return
		}
		limit = parsed
	}

	drafts, err := h.progress.ListDrafts(c.Request.Context(), limit)
	if err != nil {
		log.Printf("[request_id=%s] Failed to list drafts: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list drafts"})
		return
	}

	responses := make([]DraftResponse, 0, len(drafts))
	for i := range drafts {
		responses = append(responses, toDraftResponse(&drafts[i]))
	}

	c.JSON(http.StatusOK, gin.H{"drafts": responses, "count": len(responses)})
}
