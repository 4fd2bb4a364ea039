package submission

import (
	"context"

	"github.com/flexprice/rentalbilling/internal/logger"
	"github.com/flexprice/rentalbilling/internal/types"
)

// LogSubmitter records drops in the application log only. It is used when no
// booking system endpoint is configured.
type LogSubmitter struct {
	logger *logger.Logger
}

func NewLogSubmitter(log *logger.Logger) *LogSubmitter {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &LogSubmitter{logger: log}
}

func (s *LogSubmitter) SubmitDrop(ctx context.Context, event *DropEvent) error {
	s.logger.WithContext(ctx).Infow("drop settled",
		"event_id", event.ID,
		"booking_id", event.BookingID,
		"receipt_number", event.ReceiptNumber,
		"idempotency_key", event.IdempotencyKey,
		"final_amount", event.Settlement.FinalAmount.String(),
		"remaining_amount", event.Settlement.RemainingAmount.String(),
		"status", event.Settlement.Status,
		"remaining_display", types.GetCurrencySymbol(event.Currency)+event.Settlement.RemainingAmount.StringFixed(2),
	)
	return nil
}
