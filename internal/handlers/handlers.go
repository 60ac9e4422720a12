// Package handlers implements the REST surface on top of the store and the
// capacity calculations.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/capsyncer/capsyncer/internal/models"
	"github.com/capsyncer/capsyncer/internal/store"
	"github.com/capsyncer/capsyncer/internal/types"
	"github.com/capsyncer/capsyncer/internal/utils"
)

type Handler struct {
	store  *store.Store
	logger *slog.Logger
}

func New(s *store.Store, logger *slog.Logger) *Handler {
	return &Handler{store: s, logger: logger}
}

func (h *Handler) badRequest(ctx *gin.Context, msg string) {
	ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: msg})
}

// fail answers a store error: 404 with no body for missing records,
// otherwise 500 with msg while the cause is logged.
func (h *Handler) fail(ctx *gin.Context, err error, msg string) {
	if errors.Is(err, store.ErrNotFound) {
		ctx.Status(http.StatusNotFound)
		return
	}

	h.logger.ErrorContext(ctx.Request.Context(), msg,
		slog.String("method", ctx.Request.Method),
		slog.String("path", ctx.Request.URL.Path),
		slog.Any("error", err),
	)
	_ = ctx.Error(err)
	ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: msg})
}

// pathID parses the :id parameter and answers 400 when it is not a positive
// integer.
func (h *Handler) pathID(ctx *gin.Context) (uint, bool) {
	id, err := utils.GetID(ctx, "id")

	if err != nil {
		h.badRequest(ctx, err.Error())
		return 0, false
	}

	return id, true
}

func toCoworkerResponse(c models.Coworker) types.CoworkerResponse {
	return types.CoworkerResponse{
		ID:       c.ID,
		Name:     c.Name,
		Capacity: c.Capacity,
		IsActive: c.IsActive == nil || *c.IsActive,
	}
}

func toProjectResponse(p models.Project) types.ProjectResponse {
	return types.ProjectResponse{
		ID:   p.ID,
		Name: p.Name,
	}
}

func toTaskResponse(t models.Task) types.TaskResponse {
	return types.TaskResponse{
		ID:             t.ID,
		ProjectID:      t.ProjectID,
		Name:           t.Name,
		Priority:       t.Priority,
		Status:         t.Status,
		EstimatedHours: t.EstimatedHours,
		WeeklyEffort:   t.WeeklyEffort,
		Added:          t.Added,
		Completed:      t.Completed,
		Note:           t.Note,
	}
}

func toAssignmentResponse(a models.Assignment) types.AssignmentResponse {
	return types.AssignmentResponse{
		ID:            a.ID,
		CoworkerID:    a.CoworkerID,
		TaskItemID:    a.TaskItemID,
		HoursAssigned: a.HoursAssigned,
		AssignedDate:  a.AssignedDate,
		Note:          a.Note,
		AssignedBy:    a.AssignedBy,
	}
}

// toAssignmentDetailResponse adds the embedded coworker and task.
func toAssignmentDetailResponse(d store.AssignmentDetail) types.AssignmentResponse {
	response := toAssignmentResponse(d.Assignment)

	if d.Coworker != nil {
		coworker := toCoworkerResponse(*d.Coworker)
		response.Coworker = &coworker
	}

	if d.Task != nil {
		task := toTaskResponse(*d.Task)
		response.TaskItem = &task
	}

	return response
}

func mapSlice[M any, R any](rows []M, convert func(M) R) []R {
	out := make([]R, 0, len(rows))
	for _, row := range rows {
		out = append(out, convert(row))
	}
	return out
}
