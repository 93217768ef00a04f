package gateway

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jgkirkwood/claimtrack/internal/claim"
	"github.com/jgkirkwood/claimtrack/internal/project"
)

// Wire shapes mirror the backend's JSON contract. The client keeps them
// separate from the domain types so a contract change surfaces here, not in
// every consumer.

type periodWire struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func toPeriodWire(p claim.Period) periodWire {
	return periodWire{
		StartDate: p.Start.Format(time.DateOnly),
		EndDate:   p.End.Format(time.DateOnly),
	}
}

func (w periodWire) domain() (claim.Period, error) {
	start, err := time.Parse(time.DateOnly, w.StartDate)
	if err != nil {
		return claim.Period{}, fmt.Errorf("parsing startDate: %w", err)
	}

	end, err := time.Parse(time.DateOnly, w.EndDate)
	if err != nil {
		return claim.Period{}, fmt.Errorf("parsing endDate: %w", err)
	}

	return claim.Period{Start: start, End: end}, nil
}

type projectWire struct {
	ID          uuid.UUID `json:"projectId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UserID      *string   `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (w projectWire) domain() *project.Project {
	return &project.Project{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		UserID:      w.UserID,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

type claimWire struct {
	ID          uuid.UUID     `json:"claimId"`
	CompanyName string        `json:"companyName"`
	ClaimPeriod periodWire    `json:"claimPeriod"`
	Amount      int64         `json:"amount"`
	Status      claim.Status  `json:"status"`
	UserID      *string       `json:"userId"`
	SubmittedBy *string       `json:"submittedBy"`
	ReviewedBy  *string       `json:"reviewedBy"`
	SubmittedAt *time.Time    `json:"submittedAt"`
	ReviewedAt  *time.Time    `json:"reviewedAt"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	Projects    []projectWire `json:"projects"`
}

func (w claimWire) domain() (*claim.Claim, error) {
	period, err := w.ClaimPeriod.domain()
	if err != nil {
		return nil, err
	}

	c := &claim.Claim{
		ID:          w.ID,
		CompanyName: w.CompanyName,
		Period:      period,
		Amount:      w.Amount,
		Status:      w.Status,
		UserID:      w.UserID,
		SubmittedBy: w.SubmittedBy,
		ReviewedBy:  w.ReviewedBy,
		SubmittedAt: w.SubmittedAt,
		ReviewedAt:  w.ReviewedAt,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}

	for _, p := range w.Projects {
		c.ProjectIDs = append(c.ProjectIDs, p.ID)
	}

	return c, nil
}

func (w claimWire) projects() []*project.Project {
	projects := make([]*project.Project, 0, len(w.Projects))
	for _, p := range w.Projects {
		projects = append(projects, p.domain())
	}

	return projects
}
