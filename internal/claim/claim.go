package claim

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jgkirkwood/claimtrack/internal/auth"
)

var ErrNotFound = errors.New("claim not found")

// Status is the lifecycle state of a claim: Draft -> Submitted -> Approved.
type Status string

const (
	StatusDraft     Status = "Draft"
	StatusSubmitted Status = "Submitted"
	StatusApproved  Status = "Approved"
)

// Valid reports whether s is one of the three lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved:
		return true
	}

	return false
}

// Period is the date range a claim covers. Start must be strictly before End.
type Period struct {
	Start time.Time
	End   time.Time
}

// Claim is an R&D tax-relief claim for a company over a period. Amount is in
// pence. Identifiers and timestamps are server-assigned; actor references use
// the client's mock user ids.
type Claim struct {
	ID          uuid.UUID
	CompanyName string
	Period      Period
	Amount      int64
	Status      Status
	UserID      *string
	SubmittedBy *string
	ReviewedBy  *string
	SubmittedAt *time.Time
	ReviewedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// ProjectIDs are the linked projects, populated on fetch.
	ProjectIDs []uuid.UUID
}

// TransitionAllowed reports whether the UI should offer moving a claim from
// one status to another for the given user. Submitters submit drafts,
// reviewers approve submitted claims, and anyone may reset to Draft.
//
// This is workflow guidance only, not security: the update endpoint does not
// enforce it, so a direct API call can bypass the gating. A real deployment
// needs these rules on the backend.
func TransitionAllowed(u *auth.User, from, to Status) bool {
	if from == to {
		return false
	}

	if to == StatusDraft {
		return true
	}

	if u == nil {
		return false
	}

	switch {
	case u.Role == auth.RoleSubmitter && from == StatusDraft && to == StatusSubmitted:
		return true
	case u.Role == auth.RoleReviewer && from == StatusSubmitted && to == StatusApproved:
		return true
	}

	return false
}
