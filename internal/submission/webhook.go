package submission

import (
	"context"
	"net/http"

	ierr "github.com/flexprice/rentalbilling/internal/errors"
	"github.com/flexprice/rentalbilling/internal/httpclient"
	"github.com/flexprice/rentalbilling/internal/logger"
	"github.com/flexprice/rentalbilling/internal/types"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WebhookSubmitter posts settled drops to the booking system
type WebhookSubmitter struct {
	url     string
	client  httpclient.Client
	logger  *logger.Logger
	limiter *rate.Limiter
}

func NewWebhookSubmitter(url string, client httpclient.Client, log *logger.Logger) *WebhookSubmitter {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &WebhookSubmitter{url: url, client: client, logger: log}
}

// WithRateLimit throttles posts to perSecond. Non-positive values disable throttling.
func (s *WebhookSubmitter) WithRateLimit(perSecond float64) *WebhookSubmitter {
	if perSecond <= 0 {
		s.limiter = nil
		return s
	}
	s.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	return s
}

func (s *WebhookSubmitter) SubmitDrop(ctx context.Context, event *DropEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to encode drop event").
			Mark(ierr.ErrSystem)
	}

	headers := map[string]string{
		types.HeaderIdempotencyKey: event.IdempotencyKey,
	}
	if requestID := types.GetRequestID(ctx); requestID != "" {
		headers[types.HeaderRequestID] = requestID
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return ierr.WithError(err).
				WithHint("The drop could not be sent before the request ended").
				Mark(ierr.ErrHTTPClient)
		}
	}

	s.logger.WithContext(ctx).Debugw("posting drop event",
		"event_id", event.ID,
		"booking_id", event.BookingID,
		"url", s.url,
	)

	resp, err := s.client.Send(ctx, &httpclient.Request{
		Method:  http.MethodPost,
		URL:     s.url,
		Headers: headers,
		Body:    payload,
	})
	if err != nil {
		if httpErr, ok := httpclient.IsHTTPError(err); ok {
			return ierr.WithError(err).
				WithHint("The booking system rejected the drop").
				WithReportableDetails(map[string]any{"statusCode": httpErr.StatusCode}).
				Mark(ierr.ErrHTTPClient)
		}
		return err
	}

	s.logger.WithContext(ctx).Infow("drop event delivered",
		"event_id", event.ID,
		"booking_id", event.BookingID,
		"status_code", resp.StatusCode,
	)
	return nil
}
