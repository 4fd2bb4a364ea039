package settlement

import (
	"time"

	"github.com/flexprice/rentalbilling/internal/domain/booking"
	"github.com/flexprice/rentalbilling/internal/types"
	"github.com/shopspring/decimal"
)

// ChargeBreakdown is the unrounded trip charge for a plan, elapsed hours and km
type ChargeBreakdown struct {
	Kind  types.RatePlanKind
	Hours decimal.Decimal
	Km    decimal.Decimal

	// BaseDuration is the number of hours covered by the base price.
	// Plans without a package (hourly, unknown) use the elapsed hours.
	BaseDuration decimal.Decimal
	ExtraHours   decimal.Decimal

	// BaseDays is set for daily plans, Blocks for 24 hour plans
	BaseDays decimal.Decimal
	Blocks   decimal.Decimal

	FreeKm        decimal.Decimal
	ExtraKm       decimal.Decimal
	TimeCharge    decimal.Decimal
	ExtraKmCharge decimal.Decimal
}

// Total is the trip charge before extensions, ad-hoc charges and payments
func (c ChargeBreakdown) Total() decimal.Decimal {
	return c.TimeCharge.Add(c.ExtraKmCharge)
}

// ReconcileInput joins the trip charge with everything recorded on the booking
type ReconcileInput struct {
	Charges          ChargeBreakdown
	Extensions       []booking.ExtensionRequest
	Addons           []booking.Addon
	AdditionalCharge *booking.AdditionalCharge
	Payments         []booking.Payment
	Warnings         []string
}

// Result is the final reconciliation of a booking. It is created fresh on every
// computation and never mutated; km fields carry one decimal, money two.
type Result struct {
	TotalKmTraveled   decimal.Decimal `json:"totalKmTraveled"`
	FreeKm            decimal.Decimal `json:"freeKm"`
	ExtraKm           decimal.Decimal `json:"extraKm"`
	TimeCharge        decimal.Decimal `json:"timeCharge"`
	ExtraKmCharge     decimal.Decimal `json:"extraKmCharge"`
	ExtensionCharges  decimal.Decimal `json:"extensionCharges"`
	AdditionalCharges decimal.Decimal `json:"additionalCharges"`
	FinalAmount       decimal.Decimal `json:"finalAmount"`
	TotalPaid         decimal.Decimal `json:"totalPaid"`
	RemainingAmount   decimal.Decimal `json:"remainingAmount"`
	IsOverpaid        bool            `json:"isOverpaid"`

	Status       types.SettlementStatus `json:"status"`
	RatePlanKind types.RatePlanKind     `json:"ratePlanKind"`
	Hours        decimal.Decimal        `json:"hours"`
	ExtraHours   decimal.Decimal        `json:"extraHours"`
	HelmetCount  int                    `json:"helmetCount"`
	Warnings     []string               `json:"warnings,omitempty"`
}

// DueAmount is what the customer still owes, zero when settled or overpaid
func (r *Result) DueAmount() decimal.Decimal {
	if r.Status != types.SettlementStatusDue {
		return decimal.Zero
	}
	return r.RemainingAmount
}

// OverpaidAmount is what should be refunded, zero when settled or due
func (r *Result) OverpaidAmount() decimal.Decimal {
	if r.Status != types.SettlementStatusOverpaid {
		return decimal.Zero
	}
	return r.RemainingAmount.Abs()
}

// ExtensionQuote is a priced preview of moving a booking's end time
type ExtensionQuote struct {
	CurrentEndDateTime time.Time          `json:"currentEndDateTime"`
	NewEndDateTime     time.Time          `json:"newEndDateTime"`
	RatePlanKind       types.RatePlanKind `json:"ratePlanKind"`
	ExtraHours         decimal.Decimal    `json:"extraHours"`
	HourlyRate         decimal.Decimal    `json:"hourlyRate"`
	KmPerHour          decimal.Decimal    `json:"kmPerHour"`
	AdditionalAmount   decimal.Decimal    `json:"additionalAmount"`
	GstAmount          decimal.Decimal    `json:"gstAmount"`
	TotalAmount        decimal.Decimal    `json:"totalAmount"`
	AdditionalKmLimit  decimal.Decimal    `json:"additionalKmLimit"`
	Warnings           []string           `json:"warnings,omitempty"`
}
