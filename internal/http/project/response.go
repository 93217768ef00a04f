package project

import (
	"time"

	"github.com/google/uuid"

	"github.com/jgkirkwood/claimtrack/internal/claim"
	"github.com/jgkirkwood/claimtrack/internal/project"
)

type claimResponse struct {
	ID          uuid.UUID    `json:"claimId"`
	CompanyName string       `json:"companyName"`
	ClaimPeriod periodJSON   `json:"claimPeriod"`
	Amount      int64        `json:"amount"`
	Status      claim.Status `json:"status"`
	UserID      *string      `json:"userId"`
	SubmittedBy *string      `json:"submittedBy"`
	ReviewedBy  *string      `json:"reviewedBy"`
	SubmittedAt *time.Time   `json:"submittedAt"`
	ReviewedAt  *time.Time   `json:"reviewedAt"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type periodJSON struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type projectResponse struct {
	ID          uuid.UUID       `json:"projectId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UserID      *string         `json:"userId"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Claims      []claimResponse `json:"claims"`
}

func toResponse(p *project.Project, claims []*claim.Claim) projectResponse {
	resp := projectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		UserID:      p.UserID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	resp.Claims = make([]claimResponse, 0, len(claims))
	for _, c := range claims {
		resp.Claims = append(resp.Claims, claimResponse{
			ID:          c.ID,
			CompanyName: c.CompanyName,
			ClaimPeriod: periodJSON{
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
		})
	}

	return resp
}
