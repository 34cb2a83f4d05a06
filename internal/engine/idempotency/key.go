// Package idempotency derives the deterministic fingerprint used upstream to
// deduplicate retried webhook deliveries.
package idempotency

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"command-engine/internal/models"
)

// KeyLength is the number of hex characters in a key.
const KeyLength = 32

// GenerateKey hashes the canonical serialization of (channel, entities,
// intent, timestamp) down to 32 hex characters. The timestamp is truncated
// to the minute so retried deliveries of the same request collapse to one
// key, while a change to any entity field yields a different key.
func GenerateKey(channel models.Channel, entities models.Entity, intent models.Intent, ts time.Time) string {
	canonical := canonicalize(channel, entities, intent, ts)
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])[:KeyLength]
}

// canonicalize builds a stable field-order serialization. Field order here is
// part of the key contract; do not reorder.
func canonicalize(channel models.Channel, e models.Entity, intent models.Intent, ts time.Time) string {
	parts := []string{
		"channel=" + string(channel),
		"intent=" + string(intent),
		"ts=" + ts.UTC().Truncate(time.Minute).Format(time.RFC3339),
		"name=" + e.Name,
		"phone=" + e.Phone,
		"email=" + e.Email,
		"address=" + e.Address,
		"zip=" + e.Zip,
		"city=" + e.City,
		"state=" + e.State,
		"problem=" + e.ProblemDescription,
		"system=" + e.SystemType,
		"urgency=" + string(e.Urgency),
		"window=" + e.PreferredWindow,
		"date=" + e.PreferredDate,
		"property=" + e.PropertyType,
		fmt.Sprintf("sqft=%d", e.SquareFootage),
		fmt.Sprintf("age=%d", e.SystemAgeYears),
		"budget=" + e.BudgetRange,
		"timeline=" + e.Timeline,
		fmt.Sprintf("temp=%d", e.TemperatureF),
	}
	return strings.Join(parts, "|")
}
