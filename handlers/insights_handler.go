package handlers

import (
	"net/http"

	"legalease-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InsightsHandler handles HTTP requests for cross-document views
type InsightsHandler struct {
	insights *service.InsightsService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insights *service.InsightsService) *InsightsHandler {
	return &InsightsHandler{insights: insights}
}

// Overview handles GET /api/insights/overview
func (h *InsightsHandler) Overview(c *gin.Context) {
	overview, err := h.insights.Overview(c.Request.Context(), sessionID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, overview)
}

// Compare handles POST /api/insights/compare
func (h *InsightsHandler) Compare(c *gin.Context) {
	var req struct {
		DocumentIDs []uuid.UUID `json:"document_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	cmp, err := h.insights.Compare(c.Request.Context(), sessionID(c), req.DocumentIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, cmp)
}
