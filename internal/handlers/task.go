package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/capsyncer/capsyncer/internal/models"
	"github.com/capsyncer/capsyncer/internal/types"
)

func (h *Handler) ListTasks(ctx *gin.Context) {
	tasks, err := h.store.ListTasks(ctx.Request.Context())

	if err != nil {
		h.fail(ctx, err, "Failed to retrieve tasks")
		return
	}

	ctx.JSON(http.StatusOK, mapSlice(tasks, toTaskResponse))
}

func (h *Handler) GetTask(ctx *gin.Context) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	task, err := h.store.GetTask(ctx.Request.Context(), id)

	if err != nil {
		h.fail(ctx, err, "Failed to retrieve task")
		return
	}

	ctx.JSON(http.StatusOK, toTaskResponse(task))
}

func (h *Handler) CreateTask(ctx *gin.Context) {
	var body types.TaskRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.badRequest(ctx, "Invalid request")
		return
	}

	task := models.Task{
		ProjectID:      body.ProjectID,
		Name:           body.Name,
		EstimatedHours: body.EstimatedHours,
		WeeklyEffort:   body.WeeklyEffort,
		Note:           body.Note,
	}
	if body.Priority != nil {
		task.Priority = *body.Priority
	}
	if body.Status != nil {
		task.Status = *body.Status
	}
	if body.Added != nil {
		task.Added = body.Added.UTC()
	}
	if body.Completed != nil {
		completed := body.Completed.UTC()
		task.Completed = &completed
	}

	if err := h.store.CreateTask(ctx.Request.Context(), &task); err != nil {
		h.fail(ctx, err, "Failed to create task")
		return
	}

	ctx.JSON(http.StatusCreated, toTaskResponse(task))
}

func (h *Handler) UpdateTask(ctx *gin.Context) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	var body types.TaskRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.badRequest(ctx, "Invalid request")
		return
	}

	task, err := h.store.UpdateTask(ctx.Request.Context(), id, models.Task{
		ProjectID:      body.ProjectID,
		Name:           body.Name,
		EstimatedHours: body.EstimatedHours,
	})

	if err != nil {
		h.fail(ctx, err, "Failed to update task")
		return
	}

	ctx.JSON(http.StatusOK, toTaskResponse(task))
}

func (h *Handler) DeleteTask(ctx *gin.Context) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	if err := h.store.DeleteTask(ctx.Request.Context(), id); err != nil {
		h.fail(ctx, err, "Failed to delete task")
		return
	}

	ctx.Status(http.StatusNoContent)
}
