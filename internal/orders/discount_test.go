package orders

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imrishuroy/go-pos-terminal/internal/apperr"
)

func TestParseDiscount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "0"},
		{"   ", "0"},
		{"10", "10"},
		{" 12.5 ", "12.5"},
		{"150", "150"},
		{"-5", "-5"},
	}
	for _, tt := range tests {
		got, err := ParseDiscount(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "%q -> %s", tt.in, got)
	}
}

func TestParseDiscount_Invalid(t *testing.T) {
	for _, in := range []string{"ten", "10%", "1,5", "--1"} {
		_, err := ParseDiscount(in)
		assert.ErrorIs(t, err, ErrInvalidDiscount, in)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		assert.Equal(t, "Discount must be a number", apperr.Message(err))
	}
}

func TestValidateDiscount_Kind(t *testing.T) {
	err := ValidateDiscount(decimal.NewFromInt(101))
	assert.Equal(t, apperr.KindRange, apperr.KindOf(err))
	assert.Equal(t, "Discount must be between 0 and 100 percent", apperr.Message(err))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "450.00", FormatAmount(decimal.NewFromInt(450)))
	assert.Equal(t, "12.35", FormatAmount(decimal.RequireFromString("12.345")))
	assert.Equal(t, "-45.00", FormatDiscount(decimal.NewFromInt(45)))
	assert.Equal(t, "-0.00", FormatDiscount(decimal.Zero))
	assert.Equal(t, "5.00", FormatDiscount(decimal.NewFromInt(-5)))
}
