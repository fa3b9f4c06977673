package model

// DashboardSummary aggregates counts across collections for the dashboard
// widget. It is computed on demand from the current snapshots, never stored.
type DashboardSummary struct {
	// Tasks
	TotalTasks     int `json:"totalTasks"`
	PendingTasks   int `json:"pendingTasks"`
	CompletedTasks int `json:"completedTasks"`

	// Calendar
	EventsToday int `json:"eventsToday"`

	// Notes
	TotalNotes  int `json:"totalNotes"`
	PinnedNotes int `json:"pinnedNotes"`

	// Habits
	TotalHabits   int `json:"totalHabits"`
	BestStreak    int `json:"bestStreak"`
	DoneToday     int `json:"doneToday"`
	ActiveStreaks int `json:"activeStreaks"`

	// Goals
	TotalGoals     int `json:"totalGoals"`
	CompletedGoals int `json:"completedGoals"`
	AvgProgress    int `json:"avgProgress"`

	// Routines
	TotalRoutines  int `json:"totalRoutines"`
	ActiveRoutines int `json:"activeRoutines"`
}
