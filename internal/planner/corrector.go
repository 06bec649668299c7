package planner

import "daily-planner.com/daily-planner/pkg/constants"

// Default block lengths in minutes, used when a proposed slot is absent or
// unusable.
const (
	defaultBreakMinutes = 15
	defaultFocusMinutes = 90
	defaultBlockMinutes = 60
)

// correctSchedule walks the proposed entries in order and re-derives every
// time slot as a contiguous chain starting at start. The model's proposed
// times are used only as a source of duration and ordering: the model is
// unreliable at arithmetic and at respecting the stop boundary, so the
// corrected timeline is authoritative.
//
// An entry that would cross stop is dropped, but the walk continues: the
// cursor never decreases, so each remaining entry is still judged against the
// current cursor rather than being excluded because an earlier entry was too
// long.
func correctSchedule(entries []rawEntry, start, stop int) []rawEntry {
	corrected := make([]rawEntry, 0, len(entries))
	cursor := start

	for _, entry := range entries {
		duration := entryDuration(entry)

		if cursor+duration > stop {
			continue
		}

		entry.TimeSlot = SlotOf(cursor, cursor+duration)
		corrected = append(corrected, entry)
		cursor += duration
	}

	return corrected
}

// entryDuration computes an entry's length from its proposed slot, falling
// back to a type-based default when the slot is missing, malformed, or not a
// positive interval.
func entryDuration(entry rawEntry) int {
	if d, err := DurationMinutes(entry.TimeSlot); err == nil && d > 0 {
		return d
	}

	switch constants.EntryType(entry.Type) {
	case constants.EntryBreak:
		return defaultBreakMinutes
	case constants.EntryFocus:
		return defaultFocusMinutes
	default:
		return defaultBlockMinutes
	}
}
