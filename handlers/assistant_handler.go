package handlers

import (
	"context"
	"net/http"

	"legalease-backend/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler handles HTTP requests for the language model features
type AssistantHandler struct {
	assistant *service.AssistantService
	logger    *zap.Logger
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistant *service.AssistantService, logger *zap.Logger) *AssistantHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssistantHandler{assistant: assistant, logger: logger}
}

// Chat handles POST /api/chat
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req struct {
		Query string `json:"query" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	res, err := h.assistant.Chat(c.Request.Context(), sessionID(c), req.Query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, res)
}

// ChatHistory handles GET /api/chat/history
func (h *AssistantHandler) ChatHistory(c *gin.Context) {
	history, err := h.assistant.History(c.Request.Context(), sessionID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"history": history})
}

// CreateGuide handles POST /api/guides
func (h *AssistantHandler) CreateGuide(c *gin.Context) {
	var req struct {
		Topic string `json:"topic" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	// Create job (synchronous, fast)
	job, err := h.assistant.CreateGuideJob(c.Request.Context(), sessionID(c), req.Topic)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// The request context ends with the response, the job must outlive it
	go func() {
		bgCtx := context.Background()
		if err := h.assistant.ProcessGuide(bgCtx, job.ID); err != nil {
			h.logger.Warn("Guide job failed", zap.String("job_id", job.ID.String()), zap.Error(err))
		}
	}()

	respondOK(c, http.StatusAccepted, gin.H{
		"job_id":  job.ID,
		"status":  job.Status,
		"message": "Guide generation started. Poll /api/jobs/:id for updates.",
	})
}

// GetJobStatus handles GET /api/jobs/:id
func (h *AssistantHandler) GetJobStatus(c *gin.Context) {
	id, ok := parseID(c, "job")
	if !ok {
		return
	}

	job, err := h.assistant.GetJob(c.Request.Context(), sessionID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, job)
}

// AISummary handles POST /api/documents/:id/ai-summary
func (h *AssistantHandler) AISummary(c *gin.Context) {
	id, ok := parseID(c, "document")
	if !ok {
		return
	}

	summary, err := h.assistant.AISummary(c.Request.Context(), sessionID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"summary": summary})
}

// AISimplify handles POST /api/documents/:id/ai-simplify
func (h *AssistantHandler) AISimplify(c *gin.Context) {
	id, ok := parseID(c, "document")
	if !ok {
		return
	}

	simplified, err := h.assistant.AISimplify(c.Request.Context(), sessionID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"simplified_text": simplified})
}

// Translate handles POST /api/documents/:id/translate
func (h *AssistantHandler) Translate(c *gin.Context) {
	id, ok := parseID(c, "document")
	if !ok {
		return
	}

	var req struct {
		Language string `json:"language" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	tr, err := h.assistant.Translate(c.Request.Context(), sessionID(c), id, req.Language)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{
		"language":    req.Language,
		"translation": tr,
	})
}

// Languages handles GET /api/languages
func (h *AssistantHandler) Languages(c *gin.Context) {
	respondOK(c, http.StatusOK, gin.H{"languages": service.SupportedLanguages})
}
