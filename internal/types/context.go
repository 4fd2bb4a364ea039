package types

import (
	"context"
)

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
	CtxBookingID ContextKey = "ctx_booking_id"

	HeaderRequestID      = "X-Request-ID"
	HeaderIdempotencyKey = "Idempotency-Key"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(CtxRequestID).(string); ok {
		return requestID
	}
	return ""
}

// SetRequestID sets the request ID in the context
func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, CtxRequestID, requestID)
}

func GetBookingID(ctx context.Context) string {
	if bookingID, ok := ctx.Value(CtxBookingID).(string); ok {
		return bookingID
	}
	return ""
}

// SetBookingID sets the booking being billed in the context so log lines can be correlated
func SetBookingID(ctx context.Context, bookingID string) context.Context {
	return context.WithValue(ctx, CtxBookingID, bookingID)
}
