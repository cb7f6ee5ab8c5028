package handlers

import (
	"net/http"

	"legalease-backend/service"

	"github.com/gin-gonic/gin"
)

// AnalyzeHandler exposes the analysis pipeline over raw text, without sessions
type AnalyzeHandler struct {
	documents *service.DocumentService
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(documents *service.DocumentService) *AnalyzeHandler {
	return &AnalyzeHandler{documents: documents}
}

type textRequest struct {
	Text string `json:"text"`
}

func bindText(c *gin.Context) (string, bool) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return "", false
	}
	return req.Text, true
}

// Summarize handles POST /api/analyze/summarize
func (h *AnalyzeHandler) Summarize(c *gin.Context) {
	text, ok := bindText(c)
	if !ok {
		return
	}

	summary, err := h.documents.Summarize(c.Request.Context(), text)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"summary": summary})
}

// Simplify handles POST /api/analyze/simplify
func (h *AnalyzeHandler) Simplify(c *gin.Context) {
	text, ok := bindText(c)
	if !ok {
		return
	}

	simplified, err := h.documents.Simplify(c.Request.Context(), text)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"simplified_text": simplified})
}

// DetectRisks handles POST /api/analyze/risks
func (h *AnalyzeHandler) DetectRisks(c *gin.Context) {
	text, ok := bindText(c)
	if !ok {
		return
	}

	report, err := h.documents.DetectRisks(c.Request.Context(), text)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, report)
}
