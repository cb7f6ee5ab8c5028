package handlers

import (
	"strconv"
	"time"

	"legalease-backend/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionHeader carries the client's session id in both directions
const SessionHeader = "X-Session-ID"

const sessionKey = "legalease_session_id"

// maxSessionIDLength bounds client supplied session ids
const maxSessionIDLength = 128

// Session resolves the session id of a request, creating one when the client
// sent none, and echoes it back in the response header.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" || len(id) > maxSessionIDLength {
			id = uuid.NewString()
		}
		c.Set(sessionKey, id)
		c.Header(SessionHeader, id)
		c.Next()
	}
}

// sessionID returns the id set by Session
func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

// RequestLogger logs every request with zap and counts it by route
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("session_id", sessionID(c)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= 500:
			logger.Error("Request failed", fields...)
		case status >= 400:
			logger.Warn("Request rejected", fields...)
		default:
			logger.Info("Request handled", fields...)
		}
	}
}
