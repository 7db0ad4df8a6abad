package common

import (
	"fmt"
	"strings"
	"time"
)

// NormalizeName canonicalizes a city or seat-class name for lookups:
// trimmed, lowercased, underscores treated as spaces ("first_class" matches
// "First Class"). Normalization happens once at the boundary so repositories
// only ever see canonical keys.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, "_", " ")))
}

// GetResponseTime formats the elapsed time since initTime for the response envelope.
func GetResponseTime(initTime time.Time) string {
	return fmt.Sprintf("%dms", time.Since(initTime).Milliseconds())
}
