package claim

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=claim
type Repository interface {
	CreateClaim(ctx context.Context, c *Claim) error
	GetClaim(ctx context.Context, id uuid.UUID) (*Claim, error)
	ListClaims(ctx context.Context, filter ListFilter) ([]*Claim, error)
	UpdateClaim(ctx context.Context, c *Claim) error
	DeleteClaim(ctx context.Context, id uuid.UUID) error

	LinkProjects(ctx context.Context, id uuid.UUID, projectIDs []uuid.UUID) error
	UnlinkProject(ctx context.Context, id, projectID uuid.UUID) error
	ListClaimsByProject(ctx context.Context, projectID uuid.UUID) ([]*Claim, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateParams struct {
	CompanyName string
	Period      Period
	Amount      int64
	UserID      *string
	ProjectIDs  []uuid.UUID
}

type ListFilter struct {
	Status *Status
}

// UpdateParams is a partial-field patch. Nil fields are left untouched.
type UpdateParams struct {
	CompanyName *string
	Period      *Period
	Amount      *int64
	Status      *Status
}

// Create stores a new claim in Draft and links any requested projects.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Claim, error) {
	c := &Claim{
		CompanyName: params.CompanyName,
		Period:      params.Period,
		Amount:      params.Amount,
		Status:      StatusDraft,
		UserID:      params.UserID,
	}
	if err := s.repo.CreateClaim(ctx, c); err != nil {
		return nil, err
	}

	if len(params.ProjectIDs) > 0 {
		if err := s.repo.LinkProjects(ctx, c.ID, params.ProjectIDs); err != nil {
			return nil, err
		}

		c.ProjectIDs = params.ProjectIDs
	}

	return c, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Claim, error) {
	return s.repo.ListClaims(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Claim, error) {
	return s.repo.GetClaim(ctx, id)
}

// Update applies a partial patch. Entering Submitted stamps submittedBy and
// submittedAt with the acting user; entering Approved stamps reviewedBy and
// reviewedAt. Role rules are deliberately not checked here: gating lives in
// the client as workflow guidance only.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams, actor *string) (*Claim, error) {
	c, err := s.repo.GetClaim(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.CompanyName != nil {
		c.CompanyName = *params.CompanyName
	}

	if params.Period != nil {
		c.Period = *params.Period
	}

	if params.Amount != nil {
		c.Amount = *params.Amount
	}

	if params.Status != nil && *params.Status != c.Status {
		c.Status = *params.Status

		now := s.now()

		switch c.Status {
		case StatusSubmitted:
			c.SubmittedBy = actor
			c.SubmittedAt = &now
		case StatusApproved:
			c.ReviewedBy = actor
			c.ReviewedAt = &now
		}
	}

	if err := s.repo.UpdateClaim(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteClaim(ctx, id)
}

func (s *Service) LinkProjects(ctx context.Context, id uuid.UUID, projectIDs []uuid.UUID) error {
	if len(projectIDs) == 0 {
		return nil
	}

	return s.repo.LinkProjects(ctx, id, projectIDs)
}

func (s *Service) UnlinkProject(ctx context.Context, id, projectID uuid.UUID) error {
	return s.repo.UnlinkProject(ctx, id, projectID)
}

// ListByProject returns the claims linked to a project, for the project
// detail view.
func (s *Service) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*Claim, error) {
	return s.repo.ListClaimsByProject(ctx, projectID)
}
