package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/capsyncer/capsyncer/internal/models"
	"github.com/capsyncer/capsyncer/internal/types"
)

func (h *Handler) ListProjects(ctx *gin.Context) {
	projects, err := h.store.ListProjects(ctx.Request.Context())

	if err != nil {
		h.fail(ctx, err, "Failed to retrieve projects")
		return
	}

	ctx.JSON(http.StatusOK, mapSlice(projects, toProjectResponse))
}

func (h *Handler) GetProject(ctx *gin.Context) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	project, err := h.store.GetProject(ctx.Request.Context(), id)

	if err != nil {
		h.fail(ctx, err, "Failed to retrieve project")
		return
	}

	ctx.JSON(http.StatusOK, toProjectResponse(project))
}

func (h *Handler) CreateProject(ctx *gin.Context) {
	var body types.ProjectRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.badRequest(ctx, "Invalid request")
		return
	}

	project := models.Project{Name: body.Name}

	if err := h.store.CreateProject(ctx.Request.Context(), &project); err != nil {
		h.fail(ctx, err, "Failed to create project")
		return
	}

	ctx.JSON(http.StatusCreated, toProjectResponse(project))
}

func (h *Handler) UpdateProject(ctx *gin.Context) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	var body types.ProjectRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.badRequest(ctx, "Invalid request")
		return
	}

	project, err := h.store.UpdateProject(ctx.Request.Context(), id, models.Project{Name: body.Name})

	if err != nil {
		h.fail(ctx, err, "Failed to update project")
		return
	}

	ctx.JSON(http.StatusOK, toProjectResponse(project))
}

func (h *Handler) DeleteProject(ctx *gin.Context) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	if err := h.store.DeleteProject(ctx.Request.Context(), id); err != nil {
		h.fail(ctx, err, "Failed to delete project")
		return
	}

	ctx.Status(http.StatusNoContent)
}
