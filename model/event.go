package model

type EventCategory string

const (
	EventWork     EventCategory = "work"
	EventPersonal EventCategory = "personal"
	EventHealth   EventCategory = "health"
	EventSocial   EventCategory = "social"
	EventOther    EventCategory = "other"
)

func (c EventCategory) Valid() bool {
	switch c {
	case EventWork, EventPersonal, EventHealth, EventSocial, EventOther:
		return true
	}
	return false
}

// Event is a calendar entry. RecurrenceRule is stored verbatim for the
// client; no recurrence expansion happens server-side.
type Event struct {
	Meta           `bson:",inline"`
	Title          string        `bson:"title" json:"title"`
	Description    string        `bson:"description,omitempty" json:"description,omitempty"`
	Date           string        `bson:"date" json:"date"`
	StartTime      string        `bson:"start_time,omitempty" json:"startTime,omitempty"`
	EndTime        string        `bson:"end_time,omitempty" json:"endTime,omitempty"`
	Category       EventCategory `bson:"category" json:"category"`
	Recurring      bool          `bson:"recurring,omitempty" json:"recurring,omitempty"`
	RecurrenceRule string        `bson:"recurrence_rule,omitempty" json:"recurrenceRule,omitempty"`
}
