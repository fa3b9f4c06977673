package model

type HabitIcon string

const (
	IconStrength   HabitIcon = "strength"
	IconBook       HabitIcon = "book"
	IconRunning    HabitIcon = "running"
	IconWater      HabitIcon = "water"
	IconMeditation HabitIcon = "meditation"
	IconSleep      HabitIcon = "sleep"
	IconFood       HabitIcon = "food"
	IconWriting    HabitIcon = "writing"
	IconArt        HabitIcon = "art"
	IconMusic      HabitIcon = "music"
	IconMoney      HabitIcon = "money"
	IconCleaning   HabitIcon = "cleaning"
)

func (i HabitIcon) Valid() bool {
	switch i {
	case IconStrength, IconBook, IconRunning, IconWater, IconMeditation, IconSleep,
		IconFood, IconWriting, IconArt, IconMusic, IconMoney, IconCleaning:
		return true
	}
	return false
}

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly:
		return true
	}
	return false
}

// Habit completions are keyed by date ("2006-01-02"). Streak is derived
// from Completions and recomputed on every completion change; it is never
// edited independently.
type Habit struct {
	Meta        `bson:",inline"`
	Name        string          `bson:"name" json:"name"`
	Icon        HabitIcon       `bson:"icon" json:"icon"`
	Category    string          `bson:"category,omitempty" json:"category,omitempty"`
	Frequency   Frequency       `bson:"frequency" json:"frequency"`
	Completions map[string]bool `bson:"completions,omitempty" json:"completions,omitempty"`
	Streak      int             `bson:"streak" json:"streak"`
}
