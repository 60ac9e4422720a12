package store

import (
	"context"
	"time"

	"github.com/capsyncer/capsyncer/internal/models"
	"github.com/capsyncer/capsyncer/internal/types"
)

func (s *Store) ListTasks(ctx context.Context) ([]models.Task, error) {
	return list[models.Task](ctx, s, "tasks")
}

func (s *Store) GetTask(ctx context.Context, id uint) (models.Task, error) {
	return get[models.Task](ctx, s, "task", id)
}

// CreateTask inserts t. Empty priority and status fall back to Normal and
// Not started, a zero Added to the current time.
func (s *Store) CreateTask(ctx context.Context, t *models.Task) error {
	t.ID = 0
	if t.Priority == "" {
		t.Priority = types.PriorityNormal
	}
	if t.Status == "" {
		t.Status = types.StatusNotStarted
	}
	if t.Added.IsZero() {
		t.Added = time.Now().UTC()
	}
	return create(ctx, s, "task", t)
}

// UpdateTask copies name, estimated hours and project onto the stored task.
// Priority, status, effort, dates and note are kept.
func (s *Store) UpdateTask(ctx context.Context, id uint, input models.Task) (models.Task, error) {
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return models.Task{}, err
	}

	t.Name = input.Name
	t.EstimatedHours = input.EstimatedHours
	t.ProjectID = input.ProjectID

	if err := update(ctx, s, "task", id, &t, "Name", "EstimatedHours", "ProjectID"); err != nil {
		return models.Task{}, err
	}
	return t, nil
}

// DeleteTask removes the task and its assignments.
func (s *Store) DeleteTask(ctx context.Context, id uint) error {
	return remove[models.Task](ctx, s, "task", id)
}
