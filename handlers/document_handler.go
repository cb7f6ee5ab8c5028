package handlers

import (
	"fmt"
	"net/http"

	"legalease-backend/service"

	"github.com/gin-gonic/gin"
)

// DocumentHandler handles HTTP requests for analyzed documents
type DocumentHandler struct {
	documents *service.DocumentService
	insights  *service.InsightsService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documents *service.DocumentService, insights *service.InsightsService) *DocumentHandler {
	return &DocumentHandler{
		documents: documents,
		insights:  insights,
	}
}

func respondAnalyzed(c *gin.Context, res *service.AnalyzeResult) {
	status := http.StatusCreated
	if res.Duplicate {
		status = http.StatusOK
	}
	respondOK(c, status, gin.H{
		"document":  res.Document,
		"duplicate": res.Duplicate,
	})
}

// UploadDocument handles POST /api/documents
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "MISSING_FILE", "File is required")
		return
	}

	if limit := h.documents.MaxFileSize(); fileHeader.Size > limit {
		respondError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE",
			fmt.Sprintf("File size exceeds maximum of %d bytes", limit))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FILE_OPEN_ERROR", err.Error())
		return
	}
	defer file.Close()

	res, err := h.documents.Upload(c.Request.Context(), service.UploadRequest{
		SessionID: sessionID(c),
		Filename:  fileHeader.Filename,
		Size:      fileHeader.Size,
		Content:   file,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondAnalyzed(c, res)
}

// AnalyzeText handles POST /api/documents/text
func (h *DocumentHandler) AnalyzeText(c *gin.Context) {
	var req struct {
		Filename string `json:"filename"`
		Text     string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	res, err := h.documents.AnalyzeText(c.Request.Context(), sessionID(c), req.Filename, req.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondAnalyzed(c, res)
}

// ListDocuments handles GET /api/documents
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	list, err := h.documents.List(c.Request.Context(), sessionID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, list)
}

// GetDocument handles GET /api/documents/:id
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, ok := parseID(c, "document")
	if !ok {
		return
	}

	doc, err := h.documents.Get(c.Request.Context(), sessionID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, doc)
}

// DeleteDocument handles DELETE /api/documents/:id
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	id, ok := parseID(c, "document")
	if !ok {
		return
	}

	if err := h.documents.Delete(c.Request.Context(), sessionID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}

// GetRecommendations handles GET /api/documents/:id/recommendations
func (h *DocumentHandler) GetRecommendations(c *gin.Context) {
	id, ok := parseID(c, "document")
	if !ok {
		return
	}

	level, advice, err := h.documents.Recommendations(c.Request.Context(), sessionID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{
		"risk_level":      level,
		"recommendations": advice,
	})
}

// GetHighlights handles GET /api/documents/:id/highlights
func (h *DocumentHandler) GetHighlights(c *gin.Context) {
	id, ok := parseID(c, "document")
	if !ok {
		return
	}

	segments, err := h.insights.DocumentHighlights(c.Request.Context(), sessionID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"segments": segments})
}

// GetDistribution handles GET /api/documents/:id/distribution
func (h *DocumentHandler) GetDistribution(c *gin.Context) {
	id, ok := parseID(c, "document")
	if !ok {
		return
	}

	dist, err := h.insights.DocumentDistribution(c.Request.Context(), sessionID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"distribution": dist})
}

// ClearSession handles DELETE /api/session
func (h *DocumentHandler) ClearSession(c *gin.Context) {
	if err := h.documents.ClearSession(c.Request.Context(), sessionID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"cleared": true})
}
