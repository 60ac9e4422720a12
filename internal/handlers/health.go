package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/capsyncer/capsyncer/internal/types"
	"github.com/capsyncer/capsyncer/internal/utils"
)

// Health is a liveness probe: 200 with an empty body.
func (h *Handler) Health(ctx *gin.Context) {
	ctx.Status(http.StatusOK)
}

// Ready answers 503 while the database cannot be reached.
func (h *Handler) Ready(ctx *gin.Context) {
	if err := h.store.Ping(ctx.Request.Context(), 2*time.Second); err != nil {
		h.logger.WarnContext(ctx.Request.Context(), "readiness check failed", slog.Any("error", err))
		ctx.JSON(http.StatusServiceUnavailable, types.ErrorResponse{Error: "Database unavailable"})
		return
	}

	ctx.Status(http.StatusOK)
}

func (h *Handler) Status(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, types.StatusResponse{
		Status: "ok",
		Now:    time.Now().UTC(),
	})
}

// Me echoes the viewer taken from the request headers and what it may do.
func (h *Handler) Me(ctx *gin.Context) {
	viewer := utils.GetViewer(ctx)

	ctx.JSON(http.StatusOK, types.MeResponse{
		Viewer:      viewer,
		Permissions: viewer.Permissions(),
	})
}
