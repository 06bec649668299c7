package constants

// EntryType is the kind of block a schedule entry occupies.
type EntryType string

const (
	EntryFocus   EntryType = "focus"
	EntryRegular EntryType = "regular"
	EntryBreak   EntryType = "break"
)
