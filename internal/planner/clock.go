package planner

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "daily-planner.com/daily-planner/internal/errors"
)

// MinutesOf parses an "HH:mm" clock string into minutes since midnight.
func MinutesOf(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrMalformedTime, clock)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrMalformedTime, clock)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrMalformedTime, clock)
	}

	return hour*60 + minute, nil
}

// SlotOf renders a minute interval as a zero-padded "HH:mm-HH:mm" slot.
// Intervals never wrap past midnight here; the corrector keeps every slot
// inside a single day.
func SlotOf(start, end int) string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", start/60, start%60, end/60, end%60)
}

// SlotBounds parses an "HH:mm-HH:mm" slot into its two minute offsets.
func SlotBounds(slot string) (int, int, error) {
	parts := strings.SplitN(slot, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", apperrors.ErrMalformedTime, slot)
	}

	start, err := MinutesOf(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}

	end, err := MinutesOf(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}

	return start, end, nil
}

// DurationMinutes returns end minus start of a slot. The result can be zero or
// negative when the slot is garbled; callers decide what to do with that.
func DurationMinutes(slot string) (int, error) {
	start, end, err := SlotBounds(slot)
	if err != nil {
		return 0, err
	}
	return end - start, nil
}
