package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/adityapw/user_management_app/internal/apperrors"
)

var expiryPattern = regexp.MustCompile(`^(\d+)([smhdw])$`)

// ParseExpiry converts a duration literal like "15m", "7d" or "1w" into a
// time.Duration. Units: s=second, m=minute, h=hour, d=day, w=week.
// Literals come from static configuration, so a malformed value is a
// configuration error, not a request error.
func ParseExpiry(literal string) (time.Duration, error) {
	m := expiryPattern.FindStringSubmatch(literal)
	if m == nil {
		return 0, fmt.Errorf("%w: invalid expiry format %q, use e.g. \"7d\", \"24h\", \"60m\"", apperrors.ErrConfiguration, literal)
	}

	value, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid expiry value %q: %v", apperrors.ErrConfiguration, m[1], err)
	}

	var unit time.Duration
	switch m[2] {
	case "s":
		unit = time.Second
	case "m":
		unit = time.Minute
	case "h":
		unit = time.Hour
	case "d":
		unit = 24 * time.Hour
	case "w":
		unit = 7 * 24 * time.Hour
	default:
		return 0, fmt.Errorf("%w: unknown time unit %q", apperrors.ErrConfiguration, m[2])
	}

	return time.Duration(value) * unit, nil
}

// ExpiryFromSeconds converts a plain seconds count into a time.Duration.
func ExpiryFromSeconds(seconds int64) time.Duration {
	return time.Duration(seconds) * time.Second
}

// CalculateExpiry returns the absolute expiry timestamp for a token persisted now.
func CalculateExpiry(lifetime time.Duration) time.Time {
	return time.Now().Add(lifetime)
}
