package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgkirkwood/claimtrack/internal/money"
)

func TestFormatPence(t *testing.T) {
	tests := []struct {
		pence int64
		want  string
	}{
		{pence: 12345, want: "£123.45"},
		{pence: 0, want: "£0.00"},
		{pence: -1, want: "-£0.01"},
		{pence: 50000, want: "£500.00"},
		{pence: 5, want: "£0.05"},
		{pence: -123456, want: "-£1234.56"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, money.FormatPence(tt.pence))
	}
}

func TestParsePence(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr error
	}{
		{name: "Valid", input: "50000", want: 50000},
		{name: "One", input: "1", want: 1},
		{name: "Zero", input: "0", wantErr: money.ErrNotPositive},
		{name: "Negative", input: "-100", wantErr: money.ErrNotPositive},
		{name: "Fractional", input: "100.5", wantErr: money.ErrNotInteger},
		{name: "NonNumeric", input: "abc", wantErr: money.ErrNotANumber},
		{name: "Empty", input: "", wantErr: money.ErrNotANumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.ParsePence(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
