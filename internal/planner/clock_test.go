package planner

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "daily-planner.com/daily-planner/internal/errors"
)

func TestMinutesOf(t *testing.T) {
	cases := []struct {
		clock string
		want  int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"09:05", 545},
		{"18:00", 1080},
		{"23:59", 1439},
	}

	for _, tc := range cases {
		got, err := MinutesOf(tc.clock)
		require.NoError(t, err, tc.clock)
		assert.Equal(t, tc.want, got, tc.clock)
	}
}

func TestMinutesOfMalformed(t *testing.T) {
	for _, clock := range []string{"", "9", "24:00", "12:60", "-1:30", "ab:cd", "12:34:56", "12h30"} {
		_, err := MinutesOf(clock)
		require.Error(t, err, clock)
		assert.True(t, errors.Is(err, apperrors.ErrMalformedTime), clock)
	}
}

func TestSlotOf(t *testing.T) {
	assert.Equal(t, "09:00-10:30", SlotOf(540, 630))
	assert.Equal(t, "00:05-00:05", SlotOf(5, 5))
	assert.Equal(t, "23:00-23:59", SlotOf(1380, 1439))
}

func TestSlotRoundTrip(t *testing.T) {
	for a := 0; a <= 1439; a += 17 {
		for b := a; b <= 1439; b += 131 {
			slot := SlotOf(a, b)
			parts := strings.SplitN(slot, "-", 2)

			start, err := MinutesOf(parts[0])
			require.NoError(t, err, slot)
			end, err := MinutesOf(parts[1])
			require.NoError(t, err, slot)

			assert.Equal(t, a, start, slot)
			assert.Equal(t, b, end, slot)
		}
	}
}

func TestDurationMinutes(t *testing.T) {
	d, err := DurationMinutes("09:00-10:30")
	require.NoError(t, err)
	assert.Equal(t, 90, d)

	// Reversed bounds are reported as-is; callers must validate.
	d, err = DurationMinutes("10:30-09:00")
	require.NoError(t, err)
	assert.Equal(t, -90, d)

	_, err = DurationMinutes("garbage")
	assert.Error(t, err)
}
