package testutil

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// AssertDecimalEqual compares by value so 155 and 155.00 are equal
func AssertDecimalEqual(t testing.TB, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) bool {
	t.Helper()
	want := decimal.RequireFromString(expected)
	if want.Equal(actual) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Not equal:\nexpected: %s\nactual  : %s", want.String(), actual.String()), msgAndArgs...)
}

// Dec is shorthand for building decimals in fixtures
func Dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// DecPtr returns a pointer for optional decimal fields
func DecPtr(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}
