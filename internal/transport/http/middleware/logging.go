package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"gamestats-api/internal/transport/http/response"
)

func Logging(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info("http request",
			slog.String("request_id", GetRequestID(c)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Int("size", c.Writer.Size()),
			slog.Duration("duration", time.Since(start)),
		)
	}
}

// Recovery turns a panic into the generic 500 body.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("panic recovered",
			"request_id", GetRequestID(c),
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		response.Internal(c)
		c.Abort()
	})
}
