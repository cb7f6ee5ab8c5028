package handlers

import (
	"net/http"

	"legalease-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Services bundles what the router serves
type Services struct {
	Documents *service.DocumentService
	Insights  *service.InsightsService
	Assistant *service.AssistantService
	Quiz      *service.QuizService
}

// NewRouter builds the HTTP API
func NewRouter(svc Services, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	documentHandler := NewDocumentHandler(svc.Documents, svc.Insights)
	analyzeHandler := NewAnalyzeHandler(svc.Documents)
	assistantHandler := NewAssistantHandler(svc.Assistant, logger)
	insightsHandler := NewInsightsHandler(svc.Insights)
	quizHandler := NewQuizHandler(svc.Quiz)

	r := gin.New()
	r.Use(gin.Recovery(), Session(), RequestLogger(logger))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// Document endpoints
		api.POST("/documents", documentHandler.UploadDocument)
		api.POST("/documents/text", documentHandler.AnalyzeText)
		api.GET("/documents", documentHandler.ListDocuments)
		api.GET("/documents/:id", documentHandler.GetDocument)
		api.DELETE("/documents/:id", documentHandler.DeleteDocument)
		api.GET("/documents/:id/recommendations", documentHandler.GetRecommendations)
		api.GET("/documents/:id/highlights", documentHandler.GetHighlights)
		api.GET("/documents/:id/distribution", documentHandler.GetDistribution)
		api.POST("/documents/:id/translate", assistantHandler.Translate)
		api.POST("/documents/:id/ai-summary", assistantHandler.AISummary)
		api.POST("/documents/:id/ai-simplify", assistantHandler.AISimplify)

		// Stateless analysis
		api.POST("/analyze/summarize", analyzeHandler.Summarize)
		api.POST("/analyze/simplify", analyzeHandler.Simplify)
		api.POST("/analyze/risks", analyzeHandler.DetectRisks)

		// Insights
		api.GET("/insights/overview", insightsHandler.Overview)
		api.POST("/insights/compare", insightsHandler.Compare)

		// Assistant
		api.POST("/chat", assistantHandler.Chat)
		api.GET("/chat/history", assistantHandler.ChatHistory)
		api.DELETE("/session", documentHandler.ClearSession)
		api.POST("/guides", assistantHandler.CreateGuide)
		api.GET("/jobs/:id", assistantHandler.GetJobStatus)
		api.GET("/languages", assistantHandler.Languages)

		// Quiz
		api.GET("/quiz", quizHandler.Questions)
		api.POST("/quiz/answer", quizHandler.Answer)
	}

	return r
}
