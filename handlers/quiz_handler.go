package handlers

import (
	"net/http"

	"legalease-backend/service"

	"github.com/gin-gonic/gin"
)

// QuizHandler handles HTTP requests for the legal quiz
type QuizHandler struct {
	quiz *service.QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quiz *service.QuizService) *QuizHandler {
	return &QuizHandler{quiz: quiz}
}

// Questions handles GET /api/quiz
func (h *QuizHandler) Questions(c *gin.Context) {
	respondOK(c, http.StatusOK, gin.H{"questions": h.quiz.Questions(c.Request.Context())})
}

// Answer handles POST /api/quiz/answer
func (h *QuizHandler) Answer(c *gin.Context) {
	var req struct {
		Index  *int `json:"index" binding:"required"`
		Answer *int `json:"answer" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	res, err := h.quiz.Answer(c.Request.Context(), *req.Index, *req.Answer)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, res)
}
