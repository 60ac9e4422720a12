package client

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capsyncer/capsyncer/internal/config"
	"github.com/capsyncer/capsyncer/internal/handlers"
	"github.com/capsyncer/capsyncer/internal/router"
	"github.com/capsyncer/capsyncer/internal/store"
	"github.com/capsyncer/capsyncer/internal/testutil"
	"github.com/capsyncer/capsyncer/internal/types"
)

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Env: config.EnvDevelopment, DevOrigins: []string{"http://localhost:3000"}}
	h := handlers.New(store.New(testutil.NewTestDB(t)), logger)

	srv := httptest.NewServer(router.NewRouter(cfg, h, logger))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_EndToEnd(t *testing.T) {
	srv := newAPI(t)
	ctx := context.Background()
	c := New(srv.URL+"/", WithHTTPClient(srv.Client()), WithViewer(types.Viewer{Role: types.RoleAdmin, UserName: "grace"}))

	require.NoError(t, c.Health(ctx))

	status, err := c.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", status.Status)

	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.RoleAdmin, me.Viewer.Role)

	coworker, err := c.CreateCoworker(ctx, types.CoworkerRequest{Name: "Ada", Capacity: 40})
	require.NoError(t, err)
	project, err := c.CreateProject(ctx, types.ProjectRequest{Name: "Apollo"})
	require.NoError(t, err)
	task, err := c.CreateTask(ctx, types.TaskRequest{Name: "Design", ProjectID: project.ID, EstimatedHours: 20})
	require.NoError(t, err)
	assignment, err := c.CreateAssignment(ctx, types.AssignmentRequest{CoworkerID: coworker.ID, TaskItemID: task.ID, HoursAssigned: 15})
	require.NoError(t, err)
	assert.Equal(t, "grace", assignment.AssignedBy)

	got, err := c.GetAssignment(ctx, assignment.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Coworker)
	assert.Equal(t, "Ada", got.Coworker.Name)

	utilization, err := c.CoworkerUtilization(ctx, coworker.ID)
	require.NoError(t, err)
	assert.Equal(t, 25.0, utilization.Available)

	rollup, err := c.TaskRollup(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, rollup.Remaining)

	summary, err := c.ProjectRollup(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalTasks)

	dashboard, err := c.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15.0, dashboard.Team.TotalAssigned)

	renamed, err := c.UpdateProject(ctx, project.ID, types.ProjectRequest{Name: "Apollo 11"})
	require.NoError(t, err)
	assert.Equal(t, "Apollo 11", renamed.Name)

	require.NoError(t, c.DeleteProject(ctx, project.ID))

	_, err = c.GetTask(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assignments, err := c.ListAssignments(ctx)
	require.NoError(t, err)
	assert.Empty(t, assignments)
}

func TestClient_ErrorMapping(t *testing.T) {
	srv := newAPI(t)
	ctx := context.Background()
	c := New(srv.URL, WithHTTPClient(srv.Client()))

	_, err := c.GetCoworker(ctx, 12)
	assert.ErrorIs(t, err, ErrNotFound)

	err = c.DeleteAssignment(ctx, 12)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.CreateCoworker(ctx, types.CoworkerRequest{})
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, "Invalid request", statusErr.Message)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestClient_NoRetries(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, WithHTTPClient(srv.Client()))
	_, err := c.ListProjects(context.Background())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Empty(t, statusErr.Message)
	assert.Equal(t, 1, calls)
}

func TestClient_SendsViewerHeaders(t *testing.T) {
	var role, user string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role = r.Header.Get(types.HeaderViewerRole)
		user = r.Header.Get(types.HeaderViewerName)
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, WithViewer(types.Viewer{Role: types.RoleUser, UserName: "linus"}))
	projects, err := c.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
	assert.Equal(t, "user", role)
	assert.Equal(t, "linus", user)
}
