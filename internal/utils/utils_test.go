package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capsyncer/capsyncer/internal/types"
)

func newContext(params gin.Params) *gin.Context {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx.Params = params
	return ctx
}

func TestGetID(t *testing.T) {
	cases := []struct {
		value   string
		want    uint
		wantErr bool
	}{
		{value: "7", want: 7},
		{value: "", wantErr: true},
		{value: "abc", wantErr: true},
		{value: "-1", wantErr: true},
		{value: "0", wantErr: true},
		{value: "99999999999", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			var params gin.Params
			if tc.value != "" {
				params = gin.Params{{Key: "id", Value: tc.value}}
			}
			id, err := GetID(newContext(params), "id")
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}

func TestGetViewer(t *testing.T) {
	ctx := newContext(nil)
	assert.Equal(t, types.RoleUser, GetViewer(ctx).Role)

	ctx.Set(types.ContextViewerKey, "not a viewer")
	assert.Equal(t, types.RoleUser, GetViewer(ctx).Role)

	ctx.Set(types.ContextViewerKey, types.Viewer{Role: types.RoleAdmin, UserName: "grace"})
	viewer := GetViewer(ctx)
	assert.Equal(t, types.RoleAdmin, viewer.Role)
	assert.Equal(t, "grace", viewer.UserName)
}
