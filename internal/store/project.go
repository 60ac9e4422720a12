package store

import (
	"context"

	"github.com/capsyncer/capsyncer/internal/models"
)

func (s *Store) ListProjects(ctx context.Context) ([]models.Project, error) {
	return list[models.Project](ctx, s, "projects")
}

func (s *Store) GetProject(ctx context.Context, id uint) (models.Project, error) {
	return get[models.Project](ctx, s, "project", id)
}

func (s *Store) CreateProject(ctx context.Context, p *models.Project) error {
	p.ID = 0
	return create(ctx, s, "project", p)
}

// UpdateProject renames the stored project.
func (s *Store) UpdateProject(ctx context.Context, id uint, input models.Project) (models.Project, error) {
	p, err := s.GetProject(ctx, id)
	if err != nil {
		return models.Project{}, err
	}

	p.Name = input.Name

	if err := update(ctx, s, "project", id, &p, "Name"); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// DeleteProject removes the project together with its tasks and their
// assignments.
func (s *Store) DeleteProject(ctx context.Context, id uint) error {
	return remove[models.Project](ctx, s, "project", id)
}
