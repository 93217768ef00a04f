package view

import (
	"context"
	"errors"
	"time"

	"github.com/jgkirkwood/claimtrack/internal/validate"
)

const apiTimeout = 10 * time.Second

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// ApiCtx returns a context with a standard timeout for gateway calls.
func ApiCtx(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, apiTimeout)
}

// fieldError adapts one entry of a validation result to huh's per-field
// validator contract.
func fieldError(errs validate.FieldErrors, key string) error {
	if msg, ok := errs[key]; ok {
		return errors.New(msg)
	}

	return nil
}
