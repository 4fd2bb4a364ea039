package types

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// RatePlanKind is the canonical tariff structure a booking is billed under
type RatePlanKind string

const (
	// RATE_PLAN_KIND_HOURLY bills every elapsed hour with a per hour free km allowance
	RATE_PLAN_KIND_HOURLY RatePlanKind = "hourly"

	// RATE_PLAN_KIND_TWELVE_HOUR bills a flat 12 hour package with per hour overage
	RATE_PLAN_KIND_TWELVE_HOUR RatePlanKind = "twelve_hour"

	// RATE_PLAN_KIND_TWENTY_FOUR_HOUR bills a flat 24 hour package with 12 hour overage blocks
	RATE_PLAN_KIND_TWENTY_FOUR_HOUR RatePlanKind = "twenty_four_hour"

	// RATE_PLAN_KIND_DAILY bills whole days with a per day km allowance
	RATE_PLAN_KIND_DAILY RatePlanKind = "daily"

	// RATE_PLAN_KIND_UNKNOWN is the generic fallback for unrecognized plan strings
	RATE_PLAN_KIND_UNKNOWN RatePlanKind = "unknown"
)

// ratePlanAliases maps every known raw plan string, after normalization, to its canonical kind
var ratePlanAliases = map[string]RatePlanKind{
	"hourly":      RATE_PLAN_KIND_HOURLY,
	"hourly_plan": RATE_PLAN_KIND_HOURLY,
	"with_fuel":   RATE_PLAN_KIND_HOURLY,
	"per_hour":    RATE_PLAN_KIND_HOURLY,

	"12hr":        RATE_PLAN_KIND_TWELVE_HOUR,
	"12_hr":       RATE_PLAN_KIND_TWELVE_HOUR,
	"12hrs":       RATE_PLAN_KIND_TWELVE_HOUR,
	"12_hour":     RATE_PLAN_KIND_TWELVE_HOUR,
	"12_hours":    RATE_PLAN_KIND_TWELVE_HOUR,
	"twelve_hour": RATE_PLAN_KIND_TWELVE_HOUR,

	"24hr":             RATE_PLAN_KIND_TWENTY_FOUR_HOUR,
	"24_hr":            RATE_PLAN_KIND_TWENTY_FOUR_HOUR,
	"24hrs":            RATE_PLAN_KIND_TWENTY_FOUR_HOUR,
	"24_hour":          RATE_PLAN_KIND_TWENTY_FOUR_HOUR,
	"24_hours":         RATE_PLAN_KIND_TWENTY_FOUR_HOUR,
	"twenty_four_hour": RATE_PLAN_KIND_TWENTY_FOUR_HOUR,

	"daily":    RATE_PLAN_KIND_DAILY,
	"day_wise": RATE_PLAN_KIND_DAILY,
	"daywise":  RATE_PLAN_KIND_DAILY,
	"per_day":  RATE_PLAN_KIND_DAILY,
}

func (k RatePlanKind) String() string {
	return string(k)
}

func (k RatePlanKind) Validate() error {
	allowed := []RatePlanKind{
		RATE_PLAN_KIND_HOURLY,
		RATE_PLAN_KIND_TWELVE_HOUR,
		RATE_PLAN_KIND_TWENTY_FOUR_HOUR,
		RATE_PLAN_KIND_DAILY,
		RATE_PLAN_KIND_UNKNOWN,
	}
	if !lo.Contains(allowed, k) {
		return fmt.Errorf("invalid rate plan kind: %s", k)
	}
	return nil
}

// NormalizeRatePlanString lower-cases and trims a raw plan string and folds
// spaces and hyphens into underscores, ex "12 Hour" -> "12_hour"
func NormalizeRatePlanString(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	return s
}

// ParseRatePlanKind resolves a raw plan string to its canonical kind.
// The boolean is false when the string is not a known alias, in which
// case RATE_PLAN_KIND_UNKNOWN is returned.
func ParseRatePlanKind(raw string) (RatePlanKind, bool) {
	normalized := NormalizeRatePlanString(raw)
	if kind, ok := ratePlanAliases[normalized]; ok {
		return kind, true
	}
	return RATE_PLAN_KIND_UNKNOWN, false
}
