package project

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=project
type Repository interface {
	CreateProject(ctx context.Context, p *Project) error
	GetProject(ctx context.Context, id uuid.UUID) (*Project, error)
	ListProjects(ctx context.Context) ([]*Project, error)
	ListProjectsByIDs(ctx context.Context, ids []uuid.UUID) ([]*Project, error)
	UpdateProject(ctx context.Context, p *Project) error
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name        string
	Description string
	UserID      *string
}

// UpdateParams is a partial-field patch. Nil fields are left untouched.
type UpdateParams struct {
	Name        *string
	Description *string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Project, error) {
	p := &Project{
		Name:        params.Name,
		Description: params.Description,
		UserID:      params.UserID,
	}
	if err := s.repo.CreateProject(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) List(ctx context.Context) ([]*Project, error) {
	return s.repo.ListProjects(ctx)
}

// ListByIDs resolves a set of project ids, for populating a claim's linked
// projects. Unknown ids are skipped, not errors.
func (s *Service) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*Project, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	return s.repo.ListProjectsByIDs(ctx, ids)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Project, error) {
	return s.repo.GetProject(ctx, id)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Project, error) {
	p, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		p.Name = *params.Name
	}

	if params.Description != nil {
		p.Description = *params.Description
	}

	if err := s.repo.UpdateProject(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteProject(ctx, id)
}
