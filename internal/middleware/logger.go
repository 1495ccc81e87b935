package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/socialgraph/internal/logging"
)

// RequestLogger logs one line per request. Server errors are logged with the error
// attached to the gin context.
func RequestLogger(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if last := c.Errors.Last(); last != nil {
			args = append(args, "error", last.Err)
		}

		ctx := c.Request.Context()
		switch {
		case status >= http.StatusInternalServerError:
			log.Error(ctx, "request failed", args...)
		case status >= http.StatusBadRequest:
			log.Warn(ctx, "request rejected", args...)
		default:
			log.Info(ctx, "request", args...)
		}
	}
}
