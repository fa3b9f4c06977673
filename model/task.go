package model

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is a known priority level.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	Meta      `bson:",inline"`
	Title     string   `bson:"title" json:"title"`
	Completed bool     `bson:"completed" json:"completed"`
	Priority  Priority `bson:"priority" json:"priority"`
	DueDate   string   `bson:"due_date,omitempty" json:"dueDate,omitempty"`
	Category  string   `bson:"category,omitempty" json:"category,omitempty"`
	Order     int      `bson:"order" json:"order"`
}
