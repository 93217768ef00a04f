package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jgkirkwood/claimtrack/internal/claim"
	"github.com/jgkirkwood/claimtrack/internal/project"
)

const fallbackLoadClaims = "Failed to load claims"

// ClaimWithProjects is a claim together with its linked projects, as returned
// by the list and get endpoints.
type ClaimWithProjects struct {
	Claim    *claim.Claim
	Projects []*project.Project
}

type createClaimPayload struct {
	CompanyName string      `json:"companyName"`
	ClaimPeriod periodWire  `json:"claimPeriod"`
	Amount      int64       `json:"amount"`
	ProjectIDs  []uuid.UUID `json:"projectIds,omitempty"`
}

// CreateClaim submits a validated claim and returns the created entity with
// its server-assigned fields.
func (c *Client) CreateClaim(ctx context.Context, params claim.CreateParams) (*claim.Claim, error) {
	payload := createClaimPayload{
		CompanyName: params.CompanyName,
		ClaimPeriod: toPeriodWire(params.Period),
		Amount:      params.Amount,
		ProjectIDs:  params.ProjectIDs,
	}

	var resp struct {
		Claim claimWire `json:"claim"`
	}

	if err := c.post(ctx, "/claims", payload, &resp, fallbackGeneric); err != nil {
		return nil, err
	}

	created, err := resp.Claim.domain()
	if err != nil {
		return nil, &Error{Message: fallbackGeneric}
	}

	return created, nil
}

// ListClaims returns the current snapshot of claims, optionally filtered by
// status. An empty result is not an error.
func (c *Client) ListClaims(ctx context.Context, status *claim.Status) ([]ClaimWithProjects, error) {
	path := "/claims"
	if status != nil {
		path += "?status=" + string(*status)
	}

	var resp struct {
		Claims []claimWire `json:"claims"`
	}

	if err := c.get(ctx, path, &resp, fallbackLoadClaims); err != nil {
		return nil, err
	}

	claims := make([]ClaimWithProjects, 0, len(resp.Claims))

	for _, w := range resp.Claims {
		d, err := w.domain()
		if err != nil {
			return nil, &Error{Message: fallbackLoadClaims}
		}

		claims = append(claims, ClaimWithProjects{Claim: d, Projects: w.projects()})
	}

	return claims, nil
}

func (c *Client) GetClaim(ctx context.Context, id uuid.UUID) (*ClaimWithProjects, error) {
	var resp struct {
		Claim claimWire `json:"claim"`
	}

	if err := c.get(ctx, fmt.Sprintf("/claims/%s", id), &resp, fallbackGeneric); err != nil {
		return nil, err
	}

	d, err := resp.Claim.domain()
	if err != nil {
		return nil, &Error{Message: fallbackGeneric}
	}

	return &ClaimWithProjects{Claim: d, Projects: resp.Claim.projects()}, nil
}

type updateClaimPayload struct {
	CompanyName *string       `json:"companyName,omitempty"`
	ClaimPeriod *periodWire   `json:"claimPeriod,omitempty"`
	Amount      *int64        `json:"amount,omitempty"`
	Status      *claim.Status `json:"status,omitempty"`
}

// UpdateClaim sends a partial patch and returns the updated entity.
func (c *Client) UpdateClaim(ctx context.Context, id uuid.UUID, params claim.UpdateParams) (*claim.Claim, error) {
	payload := updateClaimPayload{
		CompanyName: params.CompanyName,
		Amount:      params.Amount,
		Status:      params.Status,
	}

	if params.Period != nil {
		w := toPeriodWire(*params.Period)
		payload.ClaimPeriod = &w
	}

	var resp struct {
		Claim claimWire `json:"claim"`
	}

	if err := c.patch(ctx, fmt.Sprintf("/claims/%s", id), payload, &resp, fallbackGeneric); err != nil {
		return nil, err
	}

	updated, err := resp.Claim.domain()
	if err != nil {
		return nil, &Error{Message: fallbackGeneric}
	}

	return updated, nil
}

func (c *Client) DeleteClaim(ctx context.Context, id uuid.UUID) error {
	return c.delete(ctx, fmt.Sprintf("/claims/%s", id), fallbackGeneric)
}

type linkProjectsPayload struct {
	ProjectIDs []uuid.UUID `json:"projectIds"`
}

// LinkProjects associates projects with a claim. Success has no body.
func (c *Client) LinkProjects(ctx context.Context, id uuid.UUID, projectIDs []uuid.UUID) error {
	payload := linkProjectsPayload{ProjectIDs: projectIDs}
	return c.post(ctx, fmt.Sprintf("/claims/%s/projects", id), payload, nil, fallbackGeneric)
}

// UnlinkProject removes one project from one claim.
func (c *Client) UnlinkProject(ctx context.Context, claimID, projectID uuid.UUID) error {
	return c.delete(ctx, fmt.Sprintf("/claims/%s/projects/%s", claimID, projectID), fallbackGeneric)
}
