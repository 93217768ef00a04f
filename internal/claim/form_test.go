package claim_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgkirkwood/claimtrack/internal/claim"
)

func validForm() claim.CreateForm {
	return claim.CreateForm{
		CompanyName: "Acme Ltd",
		StartDate:   "2024-01-01",
		EndDate:     "2024-12-31",
		Amount:      "50000",
	}
}

func TestCreateForm_Valid(t *testing.T) {
	errs := validForm().Validate()
	assert.True(t, errs.OK(), "unexpected errors: %v", errs)
}

func TestCreateForm_Period(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantField string
		wantMsg   string
	}{
		{
			name:  "ValidOrderedPair",
			start: "2023-04-06", end: "2024-04-05",
		},
		{
			name:  "AdjacentDays",
			start: "2024-01-01", end: "2024-01-02",
		},
		{
			name:  "EqualDates",
			start: "2024-01-01", end: "2024-01-01",
			wantField: "endDate", wantMsg: "Start date must be before end date",
		},
		{
			name:  "Reversed",
			start: "2024-12-31", end: "2024-01-01",
			wantField: "endDate", wantMsg: "Start date must be before end date",
		},
		{
			name:  "MissingStart",
			start: "", end: "2024-12-31",
			wantField: "startDate", wantMsg: "Start date is required",
		},
		{
			name:  "MissingEnd",
			start: "2024-01-01", end: "",
			wantField: "endDate", wantMsg: "End date is required",
		},
		{
			name:  "SlashSeparators",
			start: "2024/01/01", end: "2024-12-31",
			wantField: "startDate", wantMsg: "Start date must be in YYYY-MM-DD format",
		},
		{
			name:  "MissingZeroPadding",
			start: "2024-01-01", end: "2024-1-2",
			wantField: "endDate", wantMsg: "End date must be in YYYY-MM-DD format",
		},
		{
			name:  "EmbeddedTime",
			start: "2024-01-01T00:00:00", end: "2024-12-31",
			wantField: "startDate", wantMsg: "Start date must be in YYYY-MM-DD format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			f.StartDate = tt.start
			f.EndDate = tt.end

			errs := f.Validate()

			if tt.wantField == "" {
				assert.True(t, errs.OK(), "unexpected errors: %v", errs)
				return
			}

			assert.Equal(t, tt.wantMsg, errs[tt.wantField])
		})
	}
}

// A bad start date must not suppress the end date's own format error.
func TestCreateForm_FieldErrorsAreIndependent(t *testing.T) {
	f := validForm()
	f.StartDate = "01-01-2024"
	f.EndDate = "2024/12/31"

	errs := f.Validate()

	assert.Equal(t, "Start date must be in YYYY-MM-DD format", errs["startDate"])
	assert.Equal(t, "End date must be in YYYY-MM-DD format", errs["endDate"])
}

func TestCreateForm_Amount(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantMsg string
	}{
		{name: "Positive", amount: "1"},
		{name: "Large", amount: "123456789"},
		{name: "Zero", amount: "0", wantMsg: "Amount must be positive"},
		{name: "Negative", amount: "-50000", wantMsg: "Amount must be positive"},
		{name: "Fractional", amount: "500.50", wantMsg: "Amount must be an integer (pence)"},
		{name: "NonNumeric", amount: "fifty", wantMsg: "Amount must be a number"},
		{name: "Empty", amount: "", wantMsg: "Amount must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			f.Amount = tt.amount

			errs := f.Validate()

			if tt.wantMsg == "" {
				assert.True(t, errs.OK(), "unexpected errors: %v", errs)
				return
			}

			assert.Equal(t, tt.wantMsg, errs["amount"])
		})
	}
}

func TestCreateForm_CompanyName(t *testing.T) {
	f := validForm()
	f.CompanyName = ""
	assert.Equal(t, "Company name is required", f.Validate()["companyName"])

	f.CompanyName = strings.Repeat("a", 201)
	assert.Equal(t, "Company name must be at most 200 characters", f.Validate()["companyName"])

	f.CompanyName = strings.Repeat("a", 200)
	assert.True(t, f.Validate().OK())
}

// Every invalid field reports at once, not fail-fast.
func TestCreateForm_CollectsAllFields(t *testing.T) {
	f := claim.CreateForm{}

	errs := f.Validate()
	assert.Len(t, errs, 4)
	assert.Contains(t, errs, "companyName")
	assert.Contains(t, errs, "startDate")
	assert.Contains(t, errs, "endDate")
	assert.Contains(t, errs, "amount")
}

func TestCreateForm_Params(t *testing.T) {
	projectID := uuid.New()

	f := validForm()
	f.ProjectIDs = []uuid.UUID{projectID}
	require.True(t, f.Validate().OK())

	userID := "user-1"
	params := f.Params(&userID)

	assert.Equal(t, "Acme Ltd", params.CompanyName)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), params.Period.Start)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), params.Period.End)
	assert.Equal(t, int64(50000), params.Amount)
	assert.Equal(t, []uuid.UUID{projectID}, params.ProjectIDs)
	require.NotNil(t, params.UserID)
	assert.Equal(t, "user-1", *params.UserID)
}
