package booking

import (
	"time"

	"github.com/flexprice/rentalbilling/internal/domain/rateplan"
	"github.com/flexprice/rentalbilling/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Booking is the booking snapshot supplied by the booking retrieval collaborator
type Booking struct {
	ID string `json:"id" validate:"required"`

	VehicleHandover VehicleHandover `json:"vehicleHandover"`

	// EndDateTime is the currently agreed end of the rental
	EndDateTime time.Time `json:"endDateTime,omitempty"`

	// RateType is the raw plan kind string, ex "12hr", "day_wise"
	RateType     string             `json:"rateType"`
	RatePlanUsed rateplan.RawParams `json:"ratePlanUsed"`

	ExtensionRequests []ExtensionRequest `json:"extensionRequests" validate:"omitempty,dive"`
	Payments          []Payment          `json:"payments" validate:"omitempty,dive"`
	Addons            []Addon            `json:"addons" validate:"omitempty,dive"`

	// Previously recorded totals, carried through untouched
	TotalAmount *decimal.Decimal `json:"totalAmount,omitempty"`
	Billing     *BillingSummary  `json:"billing,omitempty"`
}

// VehicleHandover is what the operator recorded when the vehicle left
type VehicleHandover struct {
	StartMeterReading decimal.Decimal `json:"startMeterReading"`
	HandoverTime      time.Time       `json:"handoverTime" validate:"required"`
}

type BillingSummary struct {
	TotalBill decimal.Decimal `json:"totalBill"`
}

// Window is the rental window between handover and drop
type Window struct {
	HandoverTime time.Time `json:"handoverTime"`
	DropTime     time.Time `json:"dropTime"`
}

// MeterReading is the pair of odometer values in km
type MeterReading struct {
	StartReading decimal.Decimal `json:"startReading"`
	EndReading   decimal.Decimal `json:"endReading"`
}

// ExtensionRequest is a request to move the end of a booking
type ExtensionRequest struct {
	ID                   string                   `json:"id"`
	RequestedEndDateTime time.Time                `json:"requestedEndDateTime"`
	AdditionalHours      decimal.Decimal          `json:"additionalHours"`
	AdditionalAmount     decimal.Decimal          `json:"additionalAmount"`
	AdditionalGst        decimal.Decimal          `json:"additionalGst"`
	AdditionalKmLimit    decimal.Decimal          `json:"additionalKmLimit"`
	Status               types.ExtensionStatus    `json:"status"`
	CreatedBy            types.ExtensionInitiator `json:"createdBy" validate:"omitempty,oneof=customer seller"`
	AutoApproved         bool                     `json:"autoApproved"`
	Reason               string                   `json:"reason,omitempty"`
	IdempotencyKey       string                   `json:"idempotencyKey,omitempty"`
	CreatedAt            time.Time                `json:"createdAt,omitempty"`
}

// IsApproved reports whether the extension counts toward settlement
func (e ExtensionRequest) IsApproved() bool {
	return e.Status == types.ExtensionStatusApproved
}

// Addon is an ancillary item attached to the booking
type Addon struct {
	Name      string          `json:"name"`
	Kind      types.AddonKind `json:"kind,omitempty" validate:"omitempty,oneof=helmet other"`
	Count     int             `json:"count" validate:"gte=0"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// ResolvedKind returns the explicit kind when set and otherwise classifies
// the addon from its name
func (a Addon) ResolvedKind() types.AddonKind {
	if a.Kind != "" {
		return a.Kind
	}
	return types.AddonKindFromName(a.Name)
}

// Payment is a payment recorded against the booking
type Payment struct {
	Amount decimal.Decimal     `json:"amount"`
	Status types.PaymentStatus `json:"status"`
	Method string              `json:"method,omitempty"`
	Date   time.Time           `json:"date,omitempty"`
}

// AdditionalCharge is a single operator entered charge applied at drop
// (damage, cleaning, fuel, toll)
type AdditionalCharge struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// DropInput is what the operator enters when the vehicle is returned
type DropInput struct {
	EndMeterReading  *decimal.Decimal       `json:"endMeterReading"`
	DropTime         time.Time              `json:"dropTime"`
	VehicleCondition types.VehicleCondition `json:"vehicleCondition,omitempty" validate:"omitempty,oneof=excellent good fair damaged"`
	DamageNotes      string                 `json:"damageNotes,omitempty"`
	AdditionalCharge *AdditionalCharge      `json:"additionalCharge,omitempty"`
	HelmetReturned   bool                   `json:"helmetReturned"`
	Notes            string                 `json:"notes,omitempty"`
}

// Window returns the rental window closed by the drop
func (b *Booking) Window(drop *DropInput) Window {
	return Window{
		HandoverTime: b.VehicleHandover.HandoverTime,
		DropTime:     drop.DropTime,
	}
}

// MeterReading returns the start and end odometer values. The end reading
// must be present; callers validate the drop first.
func (b *Booking) MeterReading(drop *DropInput) MeterReading {
	return MeterReading{
		StartReading: b.VehicleHandover.StartMeterReading,
		EndReading:   lo.FromPtr(drop.EndMeterReading),
	}
}

// ApprovedExtensions returns the extensions that contribute to settlement
func ApprovedExtensions(extensions []ExtensionRequest) []ExtensionRequest {
	return lo.Filter(extensions, func(e ExtensionRequest, _ int) bool {
		return e.IsApproved()
	})
}

// SuccessfulPayments returns the payments that count toward the amount paid
func SuccessfulPayments(payments []Payment) []Payment {
	return lo.Filter(payments, func(p Payment, _ int) bool {
		return p.Status.IsSuccessful()
	})
}

// HelmetCount sums the count of every helmet addon
func HelmetCount(addons []Addon) int {
	return lo.SumBy(addons, func(a Addon) int {
		if a.ResolvedKind() != types.AddonKindHelmet {
			return 0
		}
		return a.Count
	})
}
