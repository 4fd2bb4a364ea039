package rateplan

import (
	"testing"

	"github.com/flexprice/rentalbilling/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ptr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func assertDec(t *testing.T, want int64, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, decimal.NewFromInt(want).Equal(got), "%s: want %d, got %s", field, want, got)
}

func TestApplyDefaults_EmptyRecord(t *testing.T) {
	hourly := ApplyDefaults(types.RATE_PLAN_KIND_HOURLY, RawParams{})
	assertDec(t, 50, hourly.RatePerHour, "ratePerHour")
	assertDec(t, 10, hourly.KmFreePerHour, "kmFreePerHour")
	assertDec(t, 6, hourly.ExtraChargePerKm, "extraChargePerKm")

	twelve := ApplyDefaults(types.RATE_PLAN_KIND_TWELVE_HOUR, RawParams{})
	assertDec(t, 500, twelve.BaseRate, "baseRate")
	assertDec(t, 120, twelve.KmLimit, "kmLimit")
	assertDec(t, 50, twelve.ExtraChargePerHour, "extraChargePerHour")
	assertDec(t, 3, twelve.ExtraChargePerKm, "extraChargePerKm")

	day := ApplyDefaults(types.RATE_PLAN_KIND_TWENTY_FOUR_HOUR, RawParams{})
	assertDec(t, 750, day.BaseRate, "baseRate")
	assertDec(t, 150, day.KmLimit, "kmLimit")
	assertDec(t, 500, day.ExtraBlockRatePer12h, "extraBlockRatePer12h")
	assertDec(t, 3, day.ExtraChargePerHour, "extraChargePerHour")
	assertDec(t, 3, day.ExtraChargePerKm, "extraChargePerKm")

	daily := ApplyDefaults(types.RATE_PLAN_KIND_DAILY, RawParams{})
	assertDec(t, 750, daily.RatePerDay, "ratePerDay")
	assertDec(t, 150, daily.KmLimitPerDay, "kmLimitPerDay")
	assertDec(t, 50, daily.ExtraChargePerHour, "extraChargePerHour")
	assertDec(t, 3, daily.ExtraChargePerKm, "extraChargePerKm")
	assertDec(t, 36, daily.AvailableHoursPerDay, "availableHoursPerDay")

	unknown := ApplyDefaults(types.RATE_PLAN_KIND_UNKNOWN, RawParams{})
	assertDec(t, 50, unknown.RatePerHour, "ratePerHour")
	assertDec(t, 0, unknown.KmLimit, "kmLimit")
	assertDec(t, 3, unknown.ExtraChargePerKm, "extraChargePerKm")
}

func TestApplyDefaults_PresentFieldsWin(t *testing.T) {
	p := ApplyDefaults(types.RATE_PLAN_KIND_TWELVE_HOUR, RawParams{
		BaseRate: ptr(650),
		KmLimit:  ptr(0),
	})
	assertDec(t, 650, p.BaseRate, "baseRate")
	assertDec(t, 0, p.KmLimit, "an explicit zero is kept")
	assertDec(t, 50, p.ExtraChargePerHour, "extraChargePerHour")
}

func TestApplyDefaults_HourlyExtraKmRate(t *testing.T) {
	tests := []struct {
		name string
		raw  RawParams
		want int64
	}{
		{name: "default", raw: RawParams{}, want: 6},
		{name: "shared field", raw: RawParams{ExtraChargePerKm: ptr(4)}, want: 4},
		{name: "hourly field", raw: RawParams{ExtraChargePerKmHourly: ptr(7)}, want: 7},
		{name: "hourly field takes precedence", raw: RawParams{ExtraChargePerKmHourly: ptr(7), ExtraChargePerKm: ptr(4)}, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ApplyDefaults(types.RATE_PLAN_KIND_HOURLY, tt.raw)
			assertDec(t, tt.want, p.ExtraChargePerKm, "extraChargePerKm")
		})
	}
}
