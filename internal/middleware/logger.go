package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StatusLevel picks the log level for a response status.
func StatusLevel(status int) slog.Level {
	switch {
	case status >= 100 && status < 400:
		return slog.LevelInfo
	case status == 499:
		return slog.LevelInfo
	case status >= 400 && status < 500:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// Logger writes one structured line per request once the handler chain has
// finished.
func Logger(logger *slog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		path := ctx.Request.URL.Path

		ctx.Next()

		status := ctx.Writer.Status()
		attrs := []slog.Attr{
			slog.String("method", ctx.Request.Method),
			slog.String("path", path),
			slog.String("route", ctx.FullPath()),
			slog.Int("status", status),
			slog.Int("bytes_written", ctx.Writer.Size()),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", ctx.ClientIP()),
		}
		if len(ctx.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", ctx.Errors.String()))
		}

		logger.LogAttrs(ctx.Request.Context(), StatusLevel(status), http.StatusText(status), attrs...)
	}
}
