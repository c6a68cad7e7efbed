package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityapw/user_management_app/internal/apperrors"
	"github.com/adityapw/user_management_app/internal/utils"
)

func TestParseExpiry(t *testing.T) {
	testCases := []struct {
		literal  string
		expected time.Duration
	}{
		{"30s", 30 * time.Second},
		{"60m", 60 * time.Minute},
		{"24h", 24 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{"1w", 7 * 24 * time.Hour},
		{"2w", 14 * 24 * time.Hour},
		{"15m", 15 * time.Minute},
	}

	for _, tc := range testCases {
		t.Run(tc.literal, func(t *testing.T) {
			d, err := utils.ParseExpiry(tc.literal)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, d)
		})
	}
}

func TestParseExpiry_Invalid(t *testing.T) {
	invalid := []string{"", "7", "d7", "7y", "7 d", "-7d", "7.5h", "sevendays"}

	for _, literal := range invalid {
		t.Run(literal, func(t *testing.T) {
			_, err := utils.ParseExpiry(literal)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrConfiguration)
		})
	}
}

func TestExpiryFromSeconds(t *testing.T) {
	assert.Equal(t, 90*time.Second, utils.ExpiryFromSeconds(90))
}

func TestCalculateExpiry(t *testing.T) {
	before := time.Now().Add(time.Hour)
	got := utils.CalculateExpiry(time.Hour)
	after := time.Now().Add(time.Hour)

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}
