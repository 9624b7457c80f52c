package api

import (
	"strings"

	"github.com/google/uuid"
)

// normalizeFixtureRef trims and validates a fixture reference from the
// path. References are UUIDs; anything else comes back empty.
func normalizeFixtureRef(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if _, err := uuid.Parse(s); err != nil {
		return ""
	}
	return s
}
