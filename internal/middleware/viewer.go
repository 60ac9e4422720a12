package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/capsyncer/capsyncer/internal/types"
)

// ViewerMiddleware stores the viewer described by the request headers. A
// missing or unknown role means a plain user. Requests are never rejected.
func ViewerMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(types.ContextViewerKey, types.Viewer{
			Role:     types.ParseRole(ctx.GetHeader(types.HeaderViewerRole)),
			UserName: strings.TrimSpace(ctx.GetHeader(types.HeaderViewerName)),
		})
		ctx.Next()
	}
}
