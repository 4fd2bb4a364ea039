package service

import (
	"testing"
	"time"

	"github.com/flexprice/rentalbilling/internal/api/dto"
	"github.com/flexprice/rentalbilling/internal/domain/booking"
	"github.com/flexprice/rentalbilling/internal/domain/rateplan"
	"github.com/flexprice/rentalbilling/internal/domain/settlement"
	ierr "github.com/flexprice/rentalbilling/internal/errors"
	"github.com/flexprice/rentalbilling/internal/testutil"
	"github.com/flexprice/rentalbilling/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type SettlementServiceSuite struct {
	testutil.BaseServiceTestSuite
	service SettlementService
}

func TestSettlementService(t *testing.T) {
	suite.Run(t, new(SettlementServiceSuite))
}

func (s *SettlementServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestParams(&s.BaseServiceTestSuite)
	s.service = NewSettlementService(params, NewRatePlanService(params), NewChargeService())
}

// twelveHourTrip is a 14h, 140km trip on the default 12 hour plan: finalAmount 660
func (s *SettlementServiceSuite) twelveHourTrip(id string) dto.SettleBookingRequest {
	return newSettleRequest(id, "12hr", rateplan.RawParams{}, s.GetNow(), 14*time.Hour, 1000, 1140)
}

func payment(amount string, status types.PaymentStatus) booking.Payment {
	return booking.Payment{Amount: testutil.Dec(amount), Status: status}
}

func (s *SettlementServiceSuite) TestSettle_DueBalance() {
	req := s.twelveHourTrip("bk_due")
	req.Booking.Payments = []booking.Payment{payment("400", types.PaymentStatusSuccess)}

	result, err := s.service.Settle(s.GetContext(), req)
	s.NoError(err)
	s.NotNil(result)

	testutil.AssertDecimalEqual(s.T(), "140", result.TotalKmTraveled)
	testutil.AssertDecimalEqual(s.T(), "120", result.FreeKm)
	testutil.AssertDecimalEqual(s.T(), "20", result.ExtraKm)
	testutil.AssertDecimalEqual(s.T(), "600", result.TimeCharge)
	testutil.AssertDecimalEqual(s.T(), "60", result.ExtraKmCharge)
	testutil.AssertDecimalEqual(s.T(), "660", result.FinalAmount)
	testutil.AssertDecimalEqual(s.T(), "400", result.TotalPaid)
	testutil.AssertDecimalEqual(s.T(), "260", result.RemainingAmount)
	testutil.AssertDecimalEqual(s.T(), "260", result.DueAmount())
	testutil.AssertDecimalEqual(s.T(), "0", result.OverpaidAmount())
	s.False(result.IsOverpaid)
	s.Equal(types.SettlementStatusDue, result.Status)
	s.Equal(types.RATE_PLAN_KIND_TWELVE_HOUR, result.RatePlanKind)
}

func (s *SettlementServiceSuite) TestSettle_StatusFromPayments() {
	tests := []struct {
		name          string
		payments      []booking.Payment
		wantPaid      string
		wantRemaining string
		wantStatus    types.SettlementStatus
		wantOverpaid  bool
	}{
		{
			name:          "nothing paid",
			wantPaid:      "0",
			wantRemaining: "660",
			wantStatus:    types.SettlementStatusDue,
		},
		{
			name: "exactly paid is settled",
			payments: []booking.Payment{
				payment("500", types.PaymentStatusSuccess),
				payment("160", types.PaymentStatusSuccess),
			},
			wantPaid:      "660",
			wantRemaining: "0",
			wantStatus:    types.SettlementStatusSettled,
		},
		{
			name:          "overpaid",
			payments:      []booking.Payment{payment("700", types.PaymentStatusSuccess)},
			wantPaid:      "700",
			wantRemaining: "-40",
			wantStatus:    types.SettlementStatusOverpaid,
			wantOverpaid:  true,
		},
		{
			name: "pending and failed payments are ignored",
			payments: []booking.Payment{
				payment("400", types.PaymentStatusSuccess),
				payment("260", types.PaymentStatusPending),
				payment("1000", types.PaymentStatusFailed),
			},
			wantPaid:      "400",
			wantRemaining: "260",
			wantStatus:    types.SettlementStatusDue,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := s.twelveHourTrip("bk_status")
			req.Booking.Payments = tt.payments

			result, err := s.service.Settle(s.GetContext(), req)
			s.NoError(err)
			testutil.AssertDecimalEqual(s.T(), tt.wantPaid, result.TotalPaid)
			testutil.AssertDecimalEqual(s.T(), tt.wantRemaining, result.RemainingAmount)
			s.Equal(tt.wantStatus, result.Status)
			s.Equal(tt.wantOverpaid, result.IsOverpaid)
		})
	}
}

func (s *SettlementServiceSuite) TestSettle_OverpaidAmountIsPositive() {
	req := s.twelveHourTrip("bk_refund")
	req.Booking.Payments = []booking.Payment{payment("700", types.PaymentStatusSuccess)}

	result, err := s.service.Settle(s.GetContext(), req)
	s.NoError(err)
	testutil.AssertDecimalEqual(s.T(), "40", result.OverpaidAmount())
	testutil.AssertDecimalEqual(s.T(), "0", result.DueAmount())
}

func (s *SettlementServiceSuite) TestSettle_ExtensionsExcludeGst() {
	req := s.twelveHourTrip("bk_ext")
	req.Booking.ExtensionRequests = []booking.ExtensionRequest{
		{
			ID:               "ext_1",
			AdditionalAmount: testutil.Dec("200"),
			AdditionalGst:    testutil.Dec("36"),
			Status:           types.ExtensionStatusApproved,
		},
		{
			ID:               "ext_2",
			AdditionalAmount: testutil.Dec("100"),
			AdditionalGst:    testutil.Dec("18"),
			Status:           types.ExtensionStatusPending,
		},
		{
			ID:               "ext_3",
			AdditionalAmount: testutil.Dec("50"),
			AdditionalGst:    testutil.Dec("9"),
			Status:           types.ExtensionStatusRejected,
		},
	}

	result, err := s.service.Settle(s.GetContext(), req)
	s.NoError(err)
	testutil.AssertDecimalEqual(s.T(), "200", result.ExtensionCharges)
	testutil.AssertDecimalEqual(s.T(), "860", result.FinalAmount)
}

func (s *SettlementServiceSuite) TestSettle_AdditionalChargeAndHelmets() {
	req := s.twelveHourTrip("bk_extra")
	req.Drop.VehicleCondition = types.VehicleConditionDamaged
	req.Drop.DamageNotes = "scratched left mirror"
	req.Drop.AdditionalCharge = &booking.AdditionalCharge{Amount: testutil.Dec("150.50"), Description: "mirror"}
	req.Booking.Addons = []booking.Addon{
		{Name: "Helmet", Count: 2},
		{Name: "Phone mount", Count: 1},
	}

	result, err := s.service.Settle(s.GetContext(), req)
	s.NoError(err)
	testutil.AssertDecimalEqual(s.T(), "150.5", result.AdditionalCharges)
	testutil.AssertDecimalEqual(s.T(), "810.5", result.FinalAmount)
	s.Equal(2, result.HelmetCount)
}

func (s *SettlementServiceSuite) TestSettle_RoundsOnlyOnOutput() {
	// 1h 10m on the hourly plan: 7/6 h at 50 = 58.333.., free km 11.666..
	req := newSettleRequest("bk_round", "hourly", rateplan.RawParams{}, s.GetNow(), 70*time.Minute, 500, 520)

	result, err := s.service.Settle(s.GetContext(), req)
	s.NoError(err)
	testutil.AssertDecimalEqual(s.T(), "58.33", result.TimeCharge)
	testutil.AssertDecimalEqual(s.T(), "11.7", result.FreeKm)
	testutil.AssertDecimalEqual(s.T(), "8.3", result.ExtraKm)
	// 8.333.. km at 6 = 50.00 exactly, rounding extraKm first would give 49.8
	testutil.AssertDecimalEqual(s.T(), "50", result.ExtraKmCharge)
	testutil.AssertDecimalEqual(s.T(), "108.33", result.FinalAmount)
	testutil.AssertDecimalEqual(s.T(), "1.17", result.Hours)
}

func (s *SettlementServiceSuite) TestSettle_UnknownPlanWarns() {
	req := newSettleRequest("bk_unknown", "monthly", rateplan.RawParams{}, s.GetNow(), 3*time.Hour, 0, 40)

	result, err := s.service.Settle(s.GetContext(), req)
	s.NoError(err)
	s.Equal(types.RATE_PLAN_KIND_UNKNOWN, result.RatePlanKind)
	s.Len(result.Warnings, 1)
	testutil.AssertDecimalEqual(s.T(), "270", result.FinalAmount)
}

func (s *SettlementServiceSuite) TestSettle_IsDeterministic() {
	req := s.twelveHourTrip("bk_repeat")
	req.Booking.Payments = []booking.Payment{payment("123.45", types.PaymentStatusSuccess)}

	first, err := s.service.Settle(s.GetContext(), req)
	s.NoError(err)
	for i := 0; i < 5; i++ {
		again, err := s.service.Settle(s.GetContext(), req)
		s.NoError(err)
		s.Equal(first, again)
	}
}

func (s *SettlementServiceSuite) TestSettle_ValidationErrors() {
	tests := []struct {
		name      string
		mutate    func(req *dto.SettleBookingRequest)
		wantField string
	}{
		{
			name:      "missing end meter reading",
			mutate:    func(req *dto.SettleBookingRequest) { req.Drop.EndMeterReading = nil },
			wantField: "endMeterReading",
		},
		{
			name: "end reading below start",
			mutate: func(req *dto.SettleBookingRequest) {
				end := decimal.NewFromInt(999)
				req.Drop.EndMeterReading = &end
			},
			wantField: "endMeterReading",
		},
		{
			name: "damaged without notes",
			mutate: func(req *dto.SettleBookingRequest) {
				req.Drop.VehicleCondition = types.VehicleConditionDamaged
				req.Drop.DamageNotes = "  "
			},
			wantField: "damageNotes",
		},
		{
			name:      "missing drop time",
			mutate:    func(req *dto.SettleBookingRequest) { req.Drop.DropTime = time.Time{} },
			wantField: "dropTime",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := s.twelveHourTrip("bk_invalid")
			tt.mutate(&req)

			result, err := s.service.Settle(s.GetContext(), req)
			s.Error(err)
			s.Nil(result)
			s.True(ierr.IsValidation(err))
			s.Contains(ierr.SafeDetails(err), tt.wantField)
		})
	}
}

func (s *SettlementServiceSuite) TestSettle_ReportsEveryDropProblem() {
	req := s.twelveHourTrip("bk_many")
	req.Drop.EndMeterReading = nil
	req.Drop.VehicleCondition = types.VehicleConditionDamaged
	req.Drop.DropTime = time.Time{}

	_, err := s.service.Settle(s.GetContext(), req)
	s.True(ierr.IsValidation(err))

	details := ierr.SafeDetails(err)
	s.Len(details, 3)
	s.Equal("Please correct the drop details before settling", ierr.DisplayMessage(err))
}

func (s *SettlementServiceSuite) TestSettle_NegativeAdditionalChargeIsACredit() {
	req := s.twelveHourTrip("bk_credit")
	req.Drop.AdditionalCharge = &booking.AdditionalCharge{Amount: testutil.Dec("-50"), Description: "goodwill"}

	result, err := s.service.Settle(s.GetContext(), req)
	s.NoError(err)
	s.NotNil(result)

	testutil.AssertDecimalEqual(s.T(), "-50", result.AdditionalCharges)
	testutil.AssertDecimalEqual(s.T(), "610", result.FinalAmount)
	testutil.AssertDecimalEqual(s.T(), "610", result.RemainingAmount)
	s.Equal(types.SettlementStatusDue, result.Status)
}

func (s *SettlementServiceSuite) TestSettle_UnrecognizedStatusesAreIgnored() {
	req := s.twelveHourTrip("bk_statuses")
	req.Booking.ExtensionRequests = []booking.ExtensionRequest{
		{ID: "ext_1", AdditionalAmount: testutil.Dec("100"), Status: types.ExtensionStatusApproved},
		{ID: "ext_2", AdditionalAmount: testutil.Dec("80"), Status: types.ExtensionStatus("cancelled")},
	}
	req.Booking.Payments = []booking.Payment{
		payment("400", types.PaymentStatusSuccess),
		payment("300", types.PaymentStatus("refunded")),
	}

	result, err := s.service.Settle(s.GetContext(), req)
	s.NoError(err)
	s.NotNil(result)

	testutil.AssertDecimalEqual(s.T(), "100", result.ExtensionCharges)
	testutil.AssertDecimalEqual(s.T(), "760", result.FinalAmount)
	testutil.AssertDecimalEqual(s.T(), "400", result.TotalPaid)
	testutil.AssertDecimalEqual(s.T(), "360", result.RemainingAmount)
	s.Require().Len(result.Warnings, 2)
	s.Contains(result.Warnings[0], "cancelled")
	s.Contains(result.Warnings[1], "refunded")
}

func (s *SettlementServiceSuite) TestSettle_RequiresBookingID() {
	req := s.twelveHourTrip("")

	_, err := s.service.Settle(s.GetContext(), req)
	s.True(ierr.IsValidation(err))
}

func (s *SettlementServiceSuite) TestSettleBatch_KeepsOrderAndIsolatesFailures() {
	valid := s.twelveHourTrip("bk_1")
	invalid := s.twelveHourTrip("bk_2")
	invalid.Drop.EndMeterReading = nil
	daily := newSettleRequest("bk_3", "daily", rateplan.RawParams{}, s.GetNow(), 50*time.Hour, 0, 320)

	resp, err := s.service.SettleBatch(s.GetContext(), dto.SettleBatchRequest{
		Items: []dto.SettleBookingRequest{valid, invalid, daily},
	})
	s.NoError(err)
	s.Len(resp.Items, 3)
	s.Equal(2, resp.Succeeded)
	s.Equal(1, resp.Failed)

	s.Equal("bk_1", resp.Items[0].BookingID)
	s.NotNil(resp.Items[0].Result)
	s.Nil(resp.Items[0].Error)
	testutil.AssertDecimalEqual(s.T(), "660", resp.Items[0].Result.FinalAmount)

	s.Equal("bk_2", resp.Items[1].BookingID)
	s.Nil(resp.Items[1].Result)
	s.NotNil(resp.Items[1].Error)
	s.Equal(ierr.ErrCodeValidation, resp.Items[1].Error.Code)
	s.Contains(resp.Items[1].Error.Details, "endMeterReading")

	s.Equal("bk_3", resp.Items[2].BookingID)
	testutil.AssertDecimalEqual(s.T(), "2950", resp.Items[2].Result.FinalAmount)
}

func (s *SettlementServiceSuite) TestSettleBatch_RejectsEmptyBatch() {
	_, err := s.service.SettleBatch(s.GetContext(), dto.SettleBatchRequest{})
	s.True(ierr.IsValidation(err))
}

func TestReconcile_SettledWhenRoundedRemainderIsZero(t *testing.T) {
	result := Reconcile(settlement.ReconcileInput{
		Charges: settlement.ChargeBreakdown{
			Kind:       types.RATE_PLAN_KIND_HOURLY,
			TimeCharge: testutil.Dec("100.004"),
		},
		Payments: []booking.Payment{payment("100", types.PaymentStatusSuccess)},
	})

	assert.Equal(t, types.SettlementStatusSettled, result.Status)
	assert.False(t, result.IsOverpaid)
	testutil.AssertDecimalEqual(t, "0", result.RemainingAmount)
	testutil.AssertDecimalEqual(t, "100", result.FinalAmount)
}

func TestReconcile_RemainingRoundsTheExactDifference(t *testing.T) {
	result := Reconcile(settlement.ReconcileInput{
		Charges: settlement.ChargeBreakdown{
			Kind:       types.RATE_PLAN_KIND_HOURLY,
			TimeCharge: testutil.Dec("1.004"),
		},
		Payments: []booking.Payment{payment("0.006", types.PaymentStatusSuccess)},
	})

	testutil.AssertDecimalEqual(t, "1", result.FinalAmount)
	testutil.AssertDecimalEqual(t, "0.01", result.TotalPaid)
	// 0.998 exact, not 1.00 - 0.01
	testutil.AssertDecimalEqual(t, "1", result.RemainingAmount)
	assert.Equal(t, types.SettlementStatusDue, result.Status)
}
