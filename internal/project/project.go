package project

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jgkirkwood/claimtrack/internal/validate"
)

var ErrNotFound = errors.New("project not found")

// Project describes an R&D project, linkable to zero or more claims.
type Project struct {
	ID          uuid.UUID
	Name        string
	Description string
	UserID      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Form is the raw user input for creating or editing a project.
type Form struct {
	Name        string
	Description string
}

// Validate returns one message per failing field, keyed by name and
// description. All fields are checked before reporting.
func (f Form) Validate() validate.FieldErrors {
	errs := validate.FieldErrors{}

	if f.Name == "" {
		errs.Add("name", "Project name is required")
	} else if len(f.Name) > 200 {
		errs.Add("name", "Project name must be at most 200 characters")
	}

	if f.Description == "" {
		errs.Add("description", "Description is required")
	} else if len(f.Description) > 1000 {
		errs.Add("description", "Description must be at most 1000 characters")
	}

	return errs
}
