package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "42.50", "-12.34", "100000.01"} {
		d := decimal.RequireFromString(s)
		assert.True(t, numericToDecimal(decimalToNumeric(d)).Equal(d), "round trip of %s", s)
	}
}

func TestTextOrNull(t *testing.T) {
	assert.Equal(t, "user-alice", textOrNull("user-alice").String)
	assert.True(t, textOrNull("user-alice").Valid)

	// Empty actor means an unauthenticated write; the column stores NULL.
	assert.False(t, textOrNull("").Valid)
}
