package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-content-pipeline/internal/domain"
	"blog-content-pipeline/internal/middleware"
	"blog-content-pipeline/internal/service"
)

// GenerationHandler handles the step and one-shot generation endpoints.
type GenerationHandler struct {
	progress service.ProgressServiceInterface
	oneShot  service.OneShotServiceInterface
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(progress service.ProgressServiceInterface, oneShot service.OneShotServiceInterface) *GenerationHandler {
	return &GenerationHandler{
		progress: progress,
		oneShot:  oneShot,
	}
}

// StepResponse is the envelope for every successful step request.
type StepResponse struct {
	Success          bool        `json:"success"`
	DraftID          string      `json:"draft_id"`
	Step             string      `json:"step"`
	Message          string      `json:"message,omitempty"`
	Data             interface{} `json:"data,omitempty"`
	NextStep         string      `json:"next_step,omitempty"`
	IsLastHeading    *bool       `json:"is_last_heading,omitempty"`
	NextHeadingIndex *int        `json:"next_heading_index,omitempty"`
}

// OneShotRequest is the body of the one-shot endpoint.
type OneShotRequest struct {
	Topic string `json:"topic"`
}

// HandleStep handles POST /api/v1/generation/step
func (h *GenerationHandler) HandleStep(c *gin.Context) {
	var req domain.StepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	result, err := h.progress.HandleStep(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, StepResponse{
		Success:          true,
		DraftID:          result.Draft.ID,
		Step:             string(result.Step),
		Message:          result.Message,
		Data:             result.Data,
		NextStep:         string(result.NextStep),
		IsLastHeading:    result.IsLastHeading,
		NextHeadingIndex: result.NextHeadingIndex,
	})
}

// HandleOneShot handles POST /api/v1/generation/one-shot
func (h *GenerationHandler) HandleOneShot(c *gin.Context) {
	var req OneShotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	draft, err := h.oneShot.Generate(c.Request.Context(), req.Topic)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"draft":   toDraftResponse(draft),
	})
}

// writeError maps controller errors onto HTTP statuses. Validation problems
// and unknown step/action pairs are the caller's fault, missing drafts are
// 404, engine and compiler failures surface as bad gateway.
func (h *GenerationHandler) writeError(c *gin.Context, err error) {
	requestID := middleware.GetRequestID(c)

	var ve *service.ValidationError
	var ue *service.UpstreamError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": ve.Error()})
	case errors.Is(err, service.ErrInvalidStepAction):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, service.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "draft not found"})
	case errors.As(err, &ue):
		log.Printf("[request_id=%s] Upstream failure: %v", requestID, err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "generation service unavailable"})
	default:
		log.Printf("[request_id=%s] Step request failed: %v", requestID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
	}
}
