package submission

import (
	"context"
	"time"

	"github.com/flexprice/rentalbilling/internal/config"
	"github.com/flexprice/rentalbilling/internal/domain/booking"
	"github.com/flexprice/rentalbilling/internal/domain/settlement"
	"github.com/flexprice/rentalbilling/internal/httpclient"
	"github.com/flexprice/rentalbilling/internal/logger"
)

// DropEvent is the record handed to the booking system once a drop is settled
type DropEvent struct {
	ID             string             `json:"id"`
	ReceiptNumber  string             `json:"receiptNumber"`
	BookingID      string             `json:"bookingId"`
	IdempotencyKey string             `json:"idempotencyKey"`
	Currency       string             `json:"currency"`
	Drop           booking.DropInput  `json:"drop"`
	Settlement     *settlement.Result `json:"settlement"`
	SubmittedAt    time.Time          `json:"submittedAt"`
}

// Submitter persists a settled drop outside the engine. Implementations must
// treat a repeated IdempotencyKey as the same submission.
type Submitter interface {
	SubmitDrop(ctx context.Context, event *DropEvent) error
}

// NewSubmitter posts to the configured webhook, or only logs when none is set
func NewSubmitter(cfg *config.Configuration, log *logger.Logger) Submitter {
	if cfg == nil || cfg.Submission.WebhookURL == "" {
		return NewLogSubmitter(log)
	}
	client := httpclient.NewDefaultClient(httpclient.ClientConfig{
		Timeout:      cfg.Submission.Timeout,
		RetryMax:     cfg.Submission.RetryMax,
		RetryWaitMin: cfg.Submission.RetryWaitMin,
		RetryWaitMax: cfg.Submission.RetryWaitMax,
	}, log)
	return NewWebhookSubmitter(cfg.Submission.WebhookURL, client, log).
		WithRateLimit(cfg.Submission.RateLimit)
}
