package constants

type EventCategory string

const (
	EventMeal     EventCategory = "meal"
	EventBreak    EventCategory = "break"
	EventCommute  EventCategory = "commute"
	EventExercise EventCategory = "exercise"
	EventSleep    EventCategory = "sleep"
	EventOther    EventCategory = "other"
)
