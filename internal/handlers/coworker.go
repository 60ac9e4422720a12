package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/capsyncer/capsyncer/internal/models"
	"github.com/capsyncer/capsyncer/internal/types"
)

func (h *Handler) ListCoworkers(ctx *gin.Context) {
	coworkers, err := h.store.ListCoworkers(ctx.Request.Context())

	if err != nil {
		h.fail(ctx, err, "Failed to retrieve coworkers")
		return
	}

	ctx.JSON(http.StatusOK, mapSlice(coworkers, toCoworkerResponse))
}

func (h *Handler) GetCoworker(ctx *gin.Context) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	coworker, err := h.store.GetCoworker(ctx.Request.Context(), id)

	if err != nil {
		h.fail(ctx, err, "Failed to retrieve coworker")
		return
	}

	ctx.JSON(http.StatusOK, toCoworkerResponse(coworker))
}

func (h *Handler) CreateCoworker(ctx *gin.Context) {
	var body types.CoworkerRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.badRequest(ctx, "Invalid request")
		return
	}

	coworker := models.Coworker{
		Name:     body.Name,
		Capacity: body.Capacity,
		IsActive: body.IsActive,
	}

	if err := h.store.CreateCoworker(ctx.Request.Context(), &coworker); err != nil {
		h.fail(ctx, err, "Failed to create coworker")
		return
	}

	ctx.JSON(http.StatusCreated, toCoworkerResponse(coworker))
}

func (h *Handler) UpdateCoworker(ctx *gin.Context) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	var body types.CoworkerRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.badRequest(ctx, "Invalid request")
		return
	}

	coworker, err := h.store.UpdateCoworker(ctx.Request.Context(), id, models.Coworker{
		Name:     body.Name,
		Capacity: body.Capacity,
	})

	if err != nil {
		h.fail(ctx, err, "Failed to update coworker")
		return
	}

	ctx.JSON(http.StatusOK, toCoworkerResponse(coworker))
}

func (h *Handler) DeleteCoworker(ctx *gin.Context) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	if err := h.store.DeleteCoworker(ctx.Request.Context(), id); err != nil {
		h.fail(ctx, err, "Failed to delete coworker")
		return
	}

	ctx.Status(http.StatusNoContent)
}
