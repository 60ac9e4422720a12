package store

import (
	"context"
	"fmt"
	"time"

	"github.com/capsyncer/capsyncer/internal/models"
)

// AssignmentDetail is an assignment joined with the coworker and task it
// links. Either side is nil only if the row vanished between the two reads.
type AssignmentDetail struct {
	Assignment models.Assignment
	Coworker   *models.Coworker
	Task       *models.Task
}

func (s *Store) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	return list[models.Assignment](ctx, s, "assignments")
}

func (s *Store) GetAssignment(ctx context.Context, id uint) (models.Assignment, error) {
	return get[models.Assignment](ctx, s, "assignment", id)
}

// ListAssignmentDetails loads every assignment and joins in its coworker and
// task with one extra query per side.
func (s *Store) ListAssignmentDetails(ctx context.Context) ([]AssignmentDetail, error) {
	assignments, err := s.ListAssignments(ctx)
	if err != nil {
		return nil, err
	}
	return s.joinAssignments(ctx, assignments)
}

func (s *Store) GetAssignmentDetail(ctx context.Context, id uint) (AssignmentDetail, error) {
	a, err := s.GetAssignment(ctx, id)
	if err != nil {
		return AssignmentDetail{}, err
	}
	details, err := s.joinAssignments(ctx, []models.Assignment{a})
	if err != nil {
		return AssignmentDetail{}, err
	}
	return details[0], nil
}

func (s *Store) joinAssignments(ctx context.Context, assignments []models.Assignment) ([]AssignmentDetail, error) {
	if len(assignments) == 0 {
		return []AssignmentDetail{}, nil
	}

	coworkerIDs := make([]uint, 0, len(assignments))
	taskIDs := make([]uint, 0, len(assignments))
	for _, a := range assignments {
		coworkerIDs = append(coworkerIDs, a.CoworkerID)
		taskIDs = append(taskIDs, a.TaskItemID)
	}

	var coworkers []models.Coworker
	if err := s.db.WithContext(ctx).Where("id IN ?", coworkerIDs).Find(&coworkers).Error; err != nil {
		return nil, fmt.Errorf("load assignment coworkers: %w", err)
	}
	var tasks []models.Task
	if err := s.db.WithContext(ctx).Where("id IN ?", taskIDs).Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("load assignment tasks: %w", err)
	}

	coworkersByID := make(map[uint]*models.Coworker, len(coworkers))
	for i := range coworkers {
		coworkersByID[coworkers[i].ID] = &coworkers[i]
	}
	tasksByID := make(map[uint]*models.Task, len(tasks))
	for i := range tasks {
		tasksByID[tasks[i].ID] = &tasks[i]
	}

	details := make([]AssignmentDetail, 0, len(assignments))
	for _, a := range assignments {
		details = append(details, AssignmentDetail{
			Assignment: a,
			Coworker:   coworkersByID[a.CoworkerID],
			Task:       tasksByID[a.TaskItemID],
		})
	}
	return details, nil
}

// CreateAssignment inserts a. A zero AssignedDate becomes the current time.
// Hours are stored as given, even when they exceed the task estimate or the
// coworker's capacity.
func (s *Store) CreateAssignment(ctx context.Context, a *models.Assignment) error {
	a.ID = 0
	if a.AssignedDate.IsZero() {
		a.AssignedDate = time.Now().UTC()
	}
	return create(ctx, s, "assignment", a)
}

// UpdateAssignment copies coworker, task and hours onto the stored assignment.
func (s *Store) UpdateAssignment(ctx context.Context, id uint, input models.Assignment) (models.Assignment, error) {
	a, err := s.GetAssignment(ctx, id)
	if err != nil {
		return models.Assignment{}, err
	}

	a.CoworkerID = input.CoworkerID
	a.TaskItemID = input.TaskItemID
	a.HoursAssigned = input.HoursAssigned

	if err := update(ctx, s, "assignment", id, &a, "CoworkerID", "TaskItemID", "HoursAssigned"); err != nil {
		return models.Assignment{}, err
	}
	return a, nil
}

func (s *Store) DeleteAssignment(ctx context.Context, id uint) error {
	return remove[models.Assignment](ctx, s, "assignment", id)
}
