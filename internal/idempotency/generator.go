package idempotency

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Scope represents the scope of idempotency
type Scope string

const (
	// ScopeBookingDrop keys the one drop a booking can have, so a retried
	// submission carries the same key as the first attempt
	ScopeBookingDrop Scope = "booking_drop"

	// ScopeExtension keys an extension by booking and requested end time
	ScopeExtension Scope = "booking_extension"
)

// Generator generates idempotency keys
type Generator struct{}

// NewGenerator creates a new idempotency key generator
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateKey generates an idempotency key from a scope and parameters
func (g *Generator) GenerateKey(scope Scope, params map[string]interface{}) string {
	// Sort params for consistent hashing
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Build hash input
	var b strings.Builder
	b.WriteString(string(scope))
	for _, k := range keys {
		b.WriteString(fmt.Sprintf(":%s=%v", k, params[k]))
	}

	hash := sha256.Sum256([]byte(b.String()))
	return fmt.Sprintf("%s-%s", scope, hex.EncodeToString(hash[:8]))
}

// KeyFromHeader returns the caller supplied key when present and otherwise
// generates one for the scope
func (g *Generator) KeyFromHeader(header string, scope Scope, params map[string]interface{}) string {
	if key := strings.TrimSpace(header); key != "" {
		return key
	}
	return g.GenerateKey(scope, params)
}
