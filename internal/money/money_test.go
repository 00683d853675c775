package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalAvoidsFloatDrift(t *testing.T) {
	// 0.1 + 0.2 is the classic binary float failure case.
	assert.Equal(t, 0.3, Total(0.1, 0.2))
}

func TestTotalExhaustiveTwoDecimalPairs(t *testing.T) {
	// Every pair of two-decimal amounts below a dollar must sum exactly.
	for a := int64(0); a < 100; a++ {
		for b := int64(0); b < 100; b++ {
			got := Total(FromCents(a), FromCents(b))
			assert.Equal(t, FromCents(a+b), got, "%v + %v", FromCents(a), FromCents(b))
		}
	}
}

func TestTotalVariadic(t *testing.T) {
	assert.Equal(t, 0.0, Total())
	assert.Equal(t, 1.5, Total(0.5, 0.25, 0.75))
	assert.Equal(t, -0.25, Total(0.5, -0.75))
}

func TestCast(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"already two decimals", 12.34, 12.34},
		{"rounds up", 12.345, 12.35},
		{"rounds down", 12.344, 12.34},
		{"float artifact", 0.1 + 0.2, 0.3},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Cast(tt.input))
		})
	}
}

func TestMultiply(t *testing.T) {
	assert.Equal(t, 1.25, Multiply(2.5, 0.5))
	assert.Equal(t, 0.38, Multiply(0.25, 1.5))
	assert.Equal(t, 0.0, Multiply(10, 0))
}

func TestCentsRoundTrip(t *testing.T) {
	for c := int64(0); c <= 10000; c++ {
		assert.Equal(t, c, Cents(FromCents(c)))
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "$0.00"},
		{0.5, "$0.50"},
		{19.99, "$19.99"},
		{1234.56, "$1,234.56"},
		{1000000, "$1,000,000.00"},
		{-1.5, "-$1.50"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, String(tt.input))
		})
	}
}

func TestDollarString(t *testing.T) {
	assert.Equal(t, "$1,235", DollarString(1234.56))
	assert.Equal(t, "$0", DollarString(0.49))
	assert.Equal(t, "$1", DollarString(0.50))
}

func TestIntegerString(t *testing.T) {
	assert.Equal(t, "1,235", IntegerString(1234.56))
	assert.Equal(t, "500", IntegerString(500))
}
