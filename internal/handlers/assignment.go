package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/capsyncer/capsyncer/internal/models"
	"github.com/capsyncer/capsyncer/internal/types"
	"github.com/capsyncer/capsyncer/internal/utils"
)

func (h *Handler) ListAssignments(ctx *gin.Context) {
	details, err := h.store.ListAssignmentDetails(ctx.Request.Context())

	if err != nil {
		h.fail(ctx, err, "Failed to retrieve assignments")
		return
	}

	ctx.JSON(http.StatusOK, mapSlice(details, toAssignmentDetailResponse))
}

func (h *Handler) GetAssignment(ctx *gin.Context) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	detail, err := h.store.GetAssignmentDetail(ctx.Request.Context(), id)

	if err != nil {
		h.fail(ctx, err, "Failed to retrieve assignment")
		return
	}

	ctx.JSON(http.StatusOK, toAssignmentDetailResponse(detail))
}

func (h *Handler) CreateAssignment(ctx *gin.Context) {
	var body types.AssignmentRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.badRequest(ctx, "Invalid request")
		return
	}

	assignment := models.Assignment{
		CoworkerID:    body.CoworkerID,
		TaskItemID:    body.TaskItemID,
		HoursAssigned: body.HoursAssigned,
		Note:          body.Note,
		AssignedBy:    body.AssignedBy,
	}
	if body.AssignedDate != nil {
		assignment.AssignedDate = body.AssignedDate.UTC()
	}
	if assignment.AssignedBy == "" {
		assignment.AssignedBy = utils.GetViewer(ctx).UserName
	}

	if err := h.store.CreateAssignment(ctx.Request.Context(), &assignment); err != nil {
		h.fail(ctx, err, "Failed to create assignment")
		return
	}

	ctx.JSON(http.StatusCreated, toAssignmentResponse(assignment))
}

func (h *Handler) UpdateAssignment(ctx *gin.Context) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	var body types.AssignmentRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.badRequest(ctx, "Invalid request")
		return
	}

	assignment, err := h.store.UpdateAssignment(ctx.Request.Context(), id, models.Assignment{
		CoworkerID:    body.CoworkerID,
		TaskItemID:    body.TaskItemID,
		HoursAssigned: body.HoursAssigned,
	})

	if err != nil {
		h.fail(ctx, err, "Failed to update assignment")
		return
	}

	ctx.JSON(http.StatusOK, toAssignmentResponse(assignment))
}

func (h *Handler) DeleteAssignment(ctx *gin.Context) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	if err := h.store.DeleteAssignment(ctx.Request.Context(), id); err != nil {
		h.fail(ctx, err, "Failed to delete assignment")
		return
	}

	ctx.Status(http.StatusNoContent)
}
