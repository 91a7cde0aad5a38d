package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "requestId"

// RequestLogger tags every request with a generated id and logs method, path,
// status and latency once the handler chain completes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set(requestIDKey, requestID)

		start := time.Now()
		c.Next()

		slog.Info("request completed",
			"requestId", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

// GetRequestID returns the id assigned by RequestLogger, if any.
func GetRequestID(c *gin.Context) (string, bool) {
	requestID, exists := c.Get(requestIDKey)
	if !exists {
		return "", false
	}
	return requestID.(string), true
}
