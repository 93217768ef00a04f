// Package validate holds the shared shape of form validation results: a map
// from field name to a single human-readable message. Validators collect
// every failing field before reporting so a form can show all errors at once.
package validate

import "regexp"

// FieldErrors maps a field name to one message, the first rule it violated.
type FieldErrors map[string]string

// Add records a message for field unless one is already present, preserving
// first-rule-wins ordering.
func (e FieldErrors) Add(field, message string) {
	if _, ok := e[field]; ok {
		return
	}

	e[field] = message
}

// OK reports whether no field failed.
func (e FieldErrors) OK() bool {
	return len(e) == 0
}

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsDateFormat reports whether s is exactly YYYY-MM-DD: zero-padded, dash
// separated, no time component.
func IsDateFormat(s string) bool {
	return dateRe.MatchString(s)
}
