package model

type GoalCategory string

const (
	GoalCareer        GoalCategory = "career"
	GoalHealth        GoalCategory = "health"
	GoalFinance       GoalCategory = "finance"
	GoalPersonal      GoalCategory = "personal"
	GoalEducation     GoalCategory = "education"
	GoalRelationships GoalCategory = "relationships"
)

func (c GoalCategory) Valid() bool {
	switch c {
	case GoalCareer, GoalHealth, GoalFinance, GoalPersonal, GoalEducation, GoalRelationships:
		return true
	}
	return false
}

type Milestone struct {
	ID        string `bson:"id" json:"id"`
	Title     string `bson:"title" json:"title"`
	Completed bool   `bson:"completed" json:"completed"`
}

// Goal progress is derived from Milestones (percent complete, 0-100) and
// persisted together with every milestone mutation.
type Goal struct {
	Meta        `bson:",inline"`
	Title       string       `bson:"title" json:"title"`
	Description string       `bson:"description,omitempty" json:"description,omitempty"`
	Category    GoalCategory `bson:"category" json:"category"`
	TargetDate  string       `bson:"target_date,omitempty" json:"targetDate,omitempty"`
	Milestones  []Milestone  `bson:"milestones,omitempty" json:"milestones,omitempty"`
	Progress    int          `bson:"progress" json:"progress"`
}
