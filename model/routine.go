package model

type RoutineType string

const (
	RoutineMorning RoutineType = "morning"
	RoutineEvening RoutineType = "evening"
	RoutineCustom  RoutineType = "custom"
)

func (t RoutineType) Valid() bool {
	switch t {
	case RoutineMorning, RoutineEvening, RoutineCustom:
		return true
	}
	return false
}

type Activity struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Duration  int       `bson:"duration" json:"duration"` // minutes
	Icon      HabitIcon `bson:"icon" json:"icon"`
	Completed bool      `bson:"completed" json:"completed"`
	Order     int       `bson:"order" json:"order"`
}

type Routine struct {
	Meta       `bson:",inline"`
	Name       string      `bson:"name" json:"name"`
	Type       RoutineType `bson:"type" json:"type"`
	Activities []Activity  `bson:"activities,omitempty" json:"activities,omitempty"`
	Active     bool        `bson:"active" json:"active"`
}
