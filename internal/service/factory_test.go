package service

import (
	"time"

	"github.com/flexprice/rentalbilling/internal/api/dto"
	"github.com/flexprice/rentalbilling/internal/domain/booking"
	"github.com/flexprice/rentalbilling/internal/domain/rateplan"
	"github.com/flexprice/rentalbilling/internal/testutil"
	"github.com/shopspring/decimal"
)

func newTestParams(s *testutil.BaseServiceTestSuite) ServiceParams {
	return NewServiceParams(
		s.GetLogger(),
		s.GetConfig(),
		s.GetInFlightGuard(),
		s.GetIdempotencyGenerator(),
		s.GetSubmitter(),
	)
}

// newSettleRequest builds a booking handed over at handover with the odometer at
// startKm, dropped after the given duration at endKm
func newSettleRequest(id, rateType string, raw rateplan.RawParams, handover time.Time, elapsed time.Duration, startKm, endKm int64) dto.SettleBookingRequest {
	end := decimal.NewFromInt(endKm)
	return dto.SettleBookingRequest{
		Booking: booking.Booking{
			ID: id,
			VehicleHandover: booking.VehicleHandover{
				StartMeterReading: decimal.NewFromInt(startKm),
				HandoverTime:      handover,
			},
			RateType:     rateType,
			RatePlanUsed: raw,
		},
		Drop: booking.DropInput{
			EndMeterReading:  &end,
			DropTime:         handover.Add(elapsed),
			VehicleCondition: "good",
		},
	}
}
