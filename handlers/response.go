package handlers

import (
	"errors"
	"net/http"

	"legalease-backend/llm"
	"legalease-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func respondOK(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

type errorMapping struct {
	err    error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{service.ErrMissingSession, http.StatusBadRequest, "MISSING_SESSION"},
	{service.ErrUnsupportedFileType, http.StatusUnsupportedMediaType, "UNSUPPORTED_FILE_TYPE"},
	{service.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
	{service.ErrNotPlainText, http.StatusUnprocessableEntity, "NOT_PLAIN_TEXT"},
	{service.ErrEmptyDocument, http.StatusUnprocessableEntity, "EMPTY_DOCUMENT"},
	{service.ErrExtractionFailed, http.StatusUnprocessableEntity, "EXTRACTION_FAILED"},
	{service.ErrStagingFailed, http.StatusInternalServerError, "STAGING_FAILED"},
	{service.ErrDocumentNotFound, http.StatusNotFound, "NOT_FOUND"},
	{service.ErrJobNotFound, http.StatusNotFound, "NOT_FOUND"},
	{service.ErrQuestionNotFound, http.StatusNotFound, "NOT_FOUND"},
	{service.ErrNotEnoughDocuments, http.StatusBadRequest, "NOT_ENOUGH_DOCUMENTS"},
	{service.ErrEmptyQuery, http.StatusBadRequest, "INVALID_REQUEST"},
	{service.ErrEmptyTopic, http.StatusBadRequest, "INVALID_REQUEST"},
	{service.ErrUnsupportedLanguage, http.StatusBadRequest, "UNSUPPORTED_LANGUAGE"},
	{llm.ErrNotConfigured, http.StatusServiceUnavailable, "LLM_NOT_CONFIGURED"},
	{llm.ErrAuthFailed, http.StatusBadGateway, "LLM_AUTH_FAILED"},
	{llm.ErrRateLimited, http.StatusTooManyRequests, "LLM_RATE_LIMITED"},
	{llm.ErrUnavailable, http.StatusServiceUnavailable, "LLM_UNAVAILABLE"},
	{llm.ErrEmptyResponse, http.StatusBadGateway, "GENERATION_FAILED"},
}

// respondServiceError writes the envelope for an error returned by a service
func respondServiceError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			respondError(c, m.status, m.code, err.Error())
			return
		}
	}
	_ = c.Error(err)
	respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
}

// parseID reads the :id path parameter, writing a 400 when it is malformed
func parseID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+what+" ID format")
		return uuid.Nil, false
	}
	return id, true
}
