package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/capsyncer/capsyncer/internal/types"
)

// GetViewer returns the viewer stored by the viewer middleware, or an
// anonymous user when none was set.
func GetViewer(ctx *gin.Context) types.Viewer {
	value, exists := ctx.Get(types.ContextViewerKey)

	if !exists {
		return types.Viewer{Role: types.RoleUser}
	}

	viewer, ok := value.(types.Viewer)

	if !ok {
		return types.Viewer{Role: types.RoleUser}
	}

	return viewer
}
