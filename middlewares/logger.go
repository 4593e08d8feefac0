package middlewares

import (
	"log/slog"
	"time"

	"pos-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an id and logs one line when it finishes.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(utils.CtxRequestID, rid)
		c.Header(requestIDHeader, rid)

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"requestId", rid,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"durationMs", time.Since(start).Milliseconds(),
			"clientIp", c.ClientIP(),
		}
		switch {
		case status >= 500:
			log.Error("http request", args...)
		case status >= 400:
			log.Warn("http request", args...)
		default:
			log.Info("http request", args...)
		}
	}
}
