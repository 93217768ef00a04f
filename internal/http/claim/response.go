package claim

import (
	"time"

	"github.com/google/uuid"

	"github.com/jgkirkwood/claimtrack/internal/claim"
	"github.com/jgkirkwood/claimtrack/internal/project"
)

type periodResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type projectResponse struct {
	ID          uuid.UUID `json:"projectId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UserID      *string   `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type claimResponse struct {
	ID          uuid.UUID         `json:"claimId"`
	CompanyName string            `json:"companyName"`
	ClaimPeriod periodResponse    `json:"claimPeriod"`
	Amount      int64             `json:"amount"`
	Status      claim.Status      `json:"status"`
	UserID      *string           `json:"userId"`
	SubmittedBy *string           `json:"submittedBy"`
	ReviewedBy  *string           `json:"reviewedBy"`
	SubmittedAt *time.Time        `json:"submittedAt"`
	ReviewedAt  *time.Time        `json:"reviewedAt"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	Projects    []projectResponse `json:"projects"`
}

func toResponse(c *claim.Claim, projects []*project.Project) claimResponse {
	resp := claimResponse{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		ClaimPeriod: periodResponse{
			StartDate: c.Period.Start.Format(time.DateOnly),
			EndDate:   c.Period.End.Format(time.DateOnly),
		},
		Amount:      c.Amount,
		Status:      c.Status,
		UserID:      c.UserID,
		SubmittedBy: c.SubmittedBy,
		ReviewedBy:  c.ReviewedBy,
		SubmittedAt: c.SubmittedAt,
		ReviewedAt:  c.ReviewedAt,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}

	// An empty array, not null, when the claim is fetched with projects.
	resp.Projects = make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		resp.Projects = append(resp.Projects, projectResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			UserID:      p.UserID,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		})
	}

	return resp
}
