package service

import (
	"github.com/flexprice/rentalbilling/internal/domain/booking"
	"github.com/flexprice/rentalbilling/internal/types"
	"github.com/shopspring/decimal"
)

// ElapsedHours returns the fractional hours between handover and drop.
// The value is never rounded; a drop before handover yields zero.
func ElapsedHours(window booking.Window) decimal.Decimal {
	ms := window.DropTime.Sub(window.HandoverTime).Milliseconds()
	if ms <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(ms).Div(types.MillisecondsPerHour)
}

// DistanceTraveled returns the km between the start and end odometer values,
// floored at zero. A reversed reading is rejected by drop validation before
// this is reached.
func DistanceTraveled(reading booking.MeterReading) decimal.Decimal {
	return decimal.Max(decimal.Zero, reading.EndReading.Sub(reading.StartReading))
}
