package claim

import (
	"time"

	"github.com/google/uuid"

	"github.com/jgkirkwood/claimtrack/internal/money"
	"github.com/jgkirkwood/claimtrack/internal/validate"
)

// CreateForm is the raw user input for a new claim, before validation.
// Dates and amount stay strings so every defect can be reported in the
// caller's terms rather than failing at parse time.
type CreateForm struct {
	CompanyName string
	StartDate   string
	EndDate     string
	Amount      string
	ProjectIDs  []uuid.UUID
}

// Validate checks the form and returns one message per failing field, keyed
// by companyName, startDate, endDate and amount. All fields are checked; a
// field with several defects reports only the first.
func (f CreateForm) Validate() validate.FieldErrors {
	errs := validate.FieldErrors{}

	if f.CompanyName == "" {
		errs.Add("companyName", "Company name is required")
	} else if len(f.CompanyName) > 200 {
		errs.Add("companyName", "Company name must be at most 200 characters")
	}

	validatePeriod(f.StartDate, f.EndDate, errs)

	if _, err := money.ParsePence(f.Amount); err != nil {
		errs.Add("amount", amountMessage(err))
	}

	return errs
}

// validatePeriod applies the per-field format rules, then the cross-field
// ordering rule. The ordering violation is attached to endDate even when the
// true defect is an out-of-order pair, and is only checked once both fields
// pass their own format checks.
func validatePeriod(startDate, endDate string, errs validate.FieldErrors) {
	startOK := true

	switch {
	case startDate == "":
		errs.Add("startDate", "Start date is required")

		startOK = false
	case !validate.IsDateFormat(startDate):
		errs.Add("startDate", "Start date must be in YYYY-MM-DD format")

		startOK = false
	}

	switch {
	case endDate == "":
		errs.Add("endDate", "End date is required")
		return
	case !validate.IsDateFormat(endDate):
		errs.Add("endDate", "End date must be in YYYY-MM-DD format")
		return
	}

	if !startOK {
		return
	}

	start, startErr := time.Parse(time.DateOnly, startDate)
	end, endErr := time.Parse(time.DateOnly, endDate)

	if startErr != nil || endErr != nil || !start.Before(end) {
		errs.Add("endDate", "Start date must be before end date")
	}
}

func amountMessage(err error) string {
	switch err {
	case money.ErrNotANumber:
		return "Amount must be a number"
	case money.ErrNotInteger:
		return "Amount must be an integer (pence)"
	default:
		return "Amount must be positive"
	}
}

// Params converts a validated form into creation parameters. It must only be
// called after Validate returned no errors.
func (f CreateForm) Params(userID *string) CreateParams {
	start, _ := time.Parse(time.DateOnly, f.StartDate)
	end, _ := time.Parse(time.DateOnly, f.EndDate)
	amount, _ := money.ParsePence(f.Amount)

	return CreateParams{
		CompanyName: f.CompanyName,
		Period:      Period{Start: start, End: end},
		Amount:      amount,
		UserID:      userID,
		ProjectIDs:  f.ProjectIDs,
	}
}
