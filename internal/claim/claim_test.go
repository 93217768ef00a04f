package claim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jgkirkwood/claimtrack/internal/auth"
	"github.com/jgkirkwood/claimtrack/internal/claim"
)

func TestTransitionAllowed(t *testing.T) {
	submitter := &auth.User{ID: "user-1", Name: "Alice", Role: auth.RoleSubmitter}
	reviewer := &auth.User{ID: "user-2", Name: "Bob", Role: auth.RoleReviewer}

	type testCase struct {
		name string
		user *auth.User
		from claim.Status
		to   claim.Status
		want bool
	}

	tests := []testCase{
		{name: "SubmitterSubmitsDraft", user: submitter, from: claim.StatusDraft, to: claim.StatusSubmitted, want: true},
		{name: "SubmitterCannotApprove", user: submitter, from: claim.StatusSubmitted, to: claim.StatusApproved, want: false},
		{name: "ReviewerApprovesSubmitted", user: reviewer, from: claim.StatusSubmitted, to: claim.StatusApproved, want: true},
		{name: "ReviewerCannotSubmit", user: reviewer, from: claim.StatusDraft, to: claim.StatusSubmitted, want: false},
		{name: "NoUserCannotSubmit", user: nil, from: claim.StatusDraft, to: claim.StatusSubmitted, want: false},
		{name: "AnyoneResetsToDraft", user: nil, from: claim.StatusApproved, to: claim.StatusDraft, want: true},
		{name: "ReviewerResetsToDraft", user: reviewer, from: claim.StatusSubmitted, to: claim.StatusDraft, want: true},
		{name: "NoSkippingDraftToApproved", user: reviewer, from: claim.StatusDraft, to: claim.StatusApproved, want: false},
		{name: "ApprovedIsTerminal", user: submitter, from: claim.StatusApproved, to: claim.StatusSubmitted, want: false},
		{name: "SameStatusIsNotATransition", user: submitter, from: claim.StatusDraft, to: claim.StatusDraft, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, claim.TransitionAllowed(tt.user, tt.from, tt.to))
		})
	}
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, claim.StatusDraft.Valid())
	assert.True(t, claim.StatusSubmitted.Valid())
	assert.True(t, claim.StatusApproved.Valid())
	assert.False(t, claim.Status("Rejected").Valid())
	assert.False(t, claim.Status("").Valid())
}
