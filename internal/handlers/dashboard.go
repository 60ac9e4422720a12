package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/capsyncer/capsyncer/internal/capacity"
	"github.com/capsyncer/capsyncer/internal/types"
)

type DashboardResponse struct {
	Team        capacity.TeamSummary      `json:"team"`
	Projects    []capacity.ProjectSummary `json:"projects"`
	GeneratedAt time.Time                 `json:"generatedAt"`
}

type snapshot struct {
	coworkers   []types.CoworkerResponse
	projects    []types.ProjectResponse
	tasks       []types.TaskResponse
	assignments []types.AssignmentResponse
}

// loadSnapshot reads every collection. Figures are recomputed on each call.
func (h *Handler) loadSnapshot(ctx context.Context) (snapshot, error) {
	var snap snapshot

	coworkers, err := h.store.ListCoworkers(ctx)
	if err != nil {
		return snap, err
	}
	projects, err := h.store.ListProjects(ctx)
	if err != nil {
		return snap, err
	}
	tasks, err := h.store.ListTasks(ctx)
	if err != nil {
		return snap, err
	}
	assignments, err := h.store.ListAssignments(ctx)
	if err != nil {
		return snap, err
	}

	snap.coworkers = mapSlice(coworkers, toCoworkerResponse)
	snap.projects = mapSlice(projects, toProjectResponse)
	snap.tasks = mapSlice(tasks, toTaskResponse)
	snap.assignments = mapSlice(assignments, toAssignmentResponse)
	return snap, nil
}

func (h *Handler) GetDashboard(ctx *gin.Context) {
	snap, err := h.loadSnapshot(ctx.Request.Context())

	if err != nil {
		h.fail(ctx, err, "Failed to build dashboard")
		return
	}

	ctx.JSON(http.StatusOK, DashboardResponse{
		Team:        capacity.Team(snap.coworkers, snap.assignments),
		Projects:    capacity.Projects(snap.projects, snap.tasks, snap.assignments),
		GeneratedAt: time.Now().UTC(),
	})
}

func (h *Handler) GetCoworkerUtilization(ctx *gin.Context) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	coworker, err := h.store.GetCoworker(ctx.Request.Context(), id)

	if err != nil {
		h.fail(ctx, err, "Failed to retrieve coworker")
		return
	}

	assignments, err := h.store.ListAssignments(ctx.Request.Context())

	if err != nil {
		h.fail(ctx, err, "Failed to retrieve assignments")
		return
	}

	utilization := capacity.CoworkerUtilization(coworker.ID, coworker.Capacity, mapSlice(assignments, toAssignmentResponse))
	utilization.Name = coworker.Name

	ctx.JSON(http.StatusOK, utilization)
}

func (h *Handler) GetTaskRollup(ctx *gin.Context) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	task, err := h.store.GetTask(ctx.Request.Context(), id)

	if err != nil {
		h.fail(ctx, err, "Failed to retrieve task")
		return
	}

	assignments, err := h.store.ListAssignments(ctx.Request.Context())

	if err != nil {
		h.fail(ctx, err, "Failed to retrieve assignments")
		return
	}

	ctx.JSON(http.StatusOK, capacity.TaskRollup(task.ID, task.EstimatedHours, mapSlice(assignments, toAssignmentResponse)))
}

func (h *Handler) GetProjectRollup(ctx *gin.Context) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	project, err := h.store.GetProject(ctx.Request.Context(), id)

	if err != nil {
		h.fail(ctx, err, "Failed to retrieve project")
		return
	}

	snap, err := h.loadSnapshot(ctx.Request.Context())

	if err != nil {
		h.fail(ctx, err, "Failed to build project rollup")
		return
	}

	summary := capacity.ProjectRollup(project.ID, snap.tasks, snap.assignments)
	summary.Name = project.Name

	ctx.JSON(http.StatusOK, summary)
}
