package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jgkirkwood/claimtrack/internal/claim"
	"github.com/jgkirkwood/claimtrack/internal/project"
)

const fallbackLoadProjects = "Failed to load projects"

// ProjectWithClaims is a project together with the claims it is linked to,
// as returned by the get endpoint.
type ProjectWithClaims struct {
	Project *project.Project
	Claims  []*claim.Claim
}

type projectPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c *Client) CreateProject(ctx context.Context, params project.CreateParams) (*project.Project, error) {
	payload := projectPayload{Name: params.Name, Description: params.Description}

	var resp struct {
		Project projectWire `json:"project"`
	}

	if err := c.post(ctx, "/projects", payload, &resp, fallbackGeneric); err != nil {
		return nil, err
	}

	return resp.Project.domain(), nil
}

// ListProjects returns the current snapshot of projects. An empty result is
// not an error.
func (c *Client) ListProjects(ctx context.Context) ([]*project.Project, error) {
	var resp struct {
		Projects []projectWire `json:"projects"`
	}

	if err := c.get(ctx, "/projects", &resp, fallbackLoadProjects); err != nil {
		return nil, err
	}

	projects := make([]*project.Project, 0, len(resp.Projects))
	for _, w := range resp.Projects {
		projects = append(projects, w.domain())
	}

	return projects, nil
}

type projectDetailWire struct {
	projectWire

	Claims []claimWire `json:"claims"`
}

func (c *Client) GetProject(ctx context.Context, id uuid.UUID) (*ProjectWithClaims, error) {
	var resp struct {
		Project projectDetailWire `json:"project"`
	}

	if err := c.get(ctx, fmt.Sprintf("/projects/%s", id), &resp, fallbackGeneric); err != nil {
		return nil, err
	}

	detail := &ProjectWithClaims{Project: resp.Project.domain()}

	for _, w := range resp.Project.Claims {
		d, err := w.domain()
		if err != nil {
			return nil, &Error{Message: fallbackGeneric}
		}

		detail.Claims = append(detail.Claims, d)
	}

	return detail, nil
}

type updateProjectPayload struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (c *Client) UpdateProject(ctx context.Context, id uuid.UUID, params project.UpdateParams) (*project.Project, error) {
	payload := updateProjectPayload{Name: params.Name, Description: params.Description}

	var resp struct {
		Project projectWire `json:"project"`
	}

	if err := c.patch(ctx, fmt.Sprintf("/projects/%s", id), payload, &resp, fallbackGeneric); err != nil {
		return nil, err
	}

	return resp.Project.domain(), nil
}

func (c *Client) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return c.delete(ctx, fmt.Sprintf("/projects/%s", id), fallbackGeneric)
}
