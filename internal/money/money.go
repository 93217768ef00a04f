// Package money handles claim amounts, stored as integer pence to avoid
// fractional rounding. GBP is the only currency modelled.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrNotANumber  = errors.New("amount is not a number")
	ErrNotInteger  = errors.New("amount is not a whole number of pence")
	ErrNotPositive = errors.New("amount is not positive")
)

// FormatPence renders pence as a pound amount, sign before the currency
// symbol: 12345 -> "£123.45", 0 -> "£0.00", -1 -> "-£0.01".
func FormatPence(pence int64) string {
	sign := ""
	if pence < 0 {
		sign = "-"
		pence = -pence
	}

	return fmt.Sprintf("%s£%d.%02d", sign, pence/100, pence%100)
}

// ParsePence parses user input denominated in pence. The value must be a
// strictly positive integer: fractional pence and non-numeric input are
// rejected.
func ParsePence(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrNotANumber
	}

	if !d.IsInteger() {
		return 0, ErrNotInteger
	}

	if !d.IsPositive() {
		return 0, ErrNotPositive
	}

	return d.IntPart(), nil
}
