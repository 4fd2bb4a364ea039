package cache

import (
	"context"
	"sync"
	"time"

	"github.com/flexprice/rentalbilling/internal/config"
	ierr "github.com/flexprice/rentalbilling/internal/errors"
	"github.com/flexprice/rentalbilling/internal/types"
)

// DefaultInFlightTTL bounds how long a crashed submission can hold a booking
const DefaultInFlightTTL = 2 * time.Minute

// InFlightGuard allows a single drop submission per booking at a time.
// A slot expires after the configured ttl so a lost release cannot block
// a booking forever.
type InFlightGuard struct {
	cache Cache
	ttl   time.Duration

	// serializes Acquire against the token compare and delete in Release
	mu sync.Mutex
}

func NewInFlightGuard(cfg *config.Configuration) *InFlightGuard {
	ttl := DefaultInFlightTTL
	if cfg != nil && cfg.Cache.InFlightTTL > 0 {
		ttl = cfg.Cache.InFlightTTL
	}
	return &InFlightGuard{
		cache: NewInMemoryCache(cfg),
		ttl:   ttl,
	}
}

// Acquire claims the booking and returns the token needed to release it.
// It fails with ErrAlreadyExists while another submission holds the booking.
func (g *InFlightGuard) Acquire(bookingID string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	token := types.GenerateUUID()
	if !g.cache.Add(context.Background(), g.key(bookingID), token, g.ttl) {
		return "", ierr.NewErrorf("drop for booking %s is already being submitted", bookingID).
			WithHint("A drop for this booking is already in progress").
			WithReportableDetails(map[string]any{"bookingId": bookingID}).
			Mark(ierr.ErrAlreadyExists)
	}
	return token, nil
}

// Release frees the booking if token still owns it. A slot that expired and
// was claimed by someone else is left alone.
func (g *InFlightGuard) Release(bookingID, token string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ctx := context.Background()
	key := g.key(bookingID)
	if held, ok := g.cache.Get(ctx, key); ok && held == token {
		g.cache.Delete(ctx, key)
	}
}

func (g *InFlightGuard) key(bookingID string) string {
	return GenerateKey(PrefixInFlightDrop, bookingID)
}
