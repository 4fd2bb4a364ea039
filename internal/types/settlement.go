package types

import (
	"github.com/shopspring/decimal"
)

// SettlementStatus labels the sign of the remaining amount of a settlement
type SettlementStatus string

const (
	// SettlementStatusDue means the customer still owes the remaining amount
	SettlementStatusDue SettlementStatus = "due"
	// SettlementStatusOverpaid means successful payments exceed the final amount
	SettlementStatusOverpaid SettlementStatus = "overpaid"
	// SettlementStatusSettled means payments match the final amount exactly
	SettlementStatusSettled SettlementStatus = "settled"
)

func (s SettlementStatus) String() string {
	return string(s)
}

const (
	// KM_PRECISION is the number of decimals kept on exposed distance fields
	KM_PRECISION = 1

	// MONEY_PRECISION is the number of decimals kept on exposed monetary fields
	MONEY_PRECISION = 2

	// HOURS_PRECISION is the number of decimals kept on exposed hour fields
	HOURS_PRECISION = 2

	// DEFAULT_CURRENCY is the currency settlements are expressed in
	DEFAULT_CURRENCY = "inr"
)

var (
	// GSTRate is the fixed tax rate applied to extension amounts
	GSTRate = decimal.RequireFromString("0.18")

	// MillisecondsPerHour converts a window in milliseconds to hours
	MillisecondsPerHour = decimal.NewFromInt(3_600_000)
)

// RoundKm rounds a distance for exposure on a result
func RoundKm(d decimal.Decimal) decimal.Decimal {
	return d.Round(KM_PRECISION)
}

// RoundHours rounds a duration in hours for exposure on a result
func RoundHours(d decimal.Decimal) decimal.Decimal {
	return d.Round(HOURS_PRECISION)
}

// RoundMoney rounds an amount for exposure on a result
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MONEY_PRECISION)
}

// CURRENCY_CODES_SYMBOLS is a map of 3 digit ISO currency codes to their symbols
var CURRENCY_CODES_SYMBOLS = map[string]string{
	"inr": "₹",
	"usd": "$",
	"eur": "€",
	"gbp": "£",
}

// GetCurrencySymbol returns the symbol for a given currency code
// if the code is not found, it returns the code itself
func GetCurrencySymbol(code string) string {
	if symbol, ok := CURRENCY_CODES_SYMBOLS[code]; ok {
		return symbol
	}
	return code
}
