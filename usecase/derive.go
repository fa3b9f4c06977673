package usecase

import (
	"math"
	"time"

	"dailysync/model"
)

// DateKey formats a day the way completion maps are keyed.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// HabitStreak counts consecutive completed days ending today. When today is
// not yet marked the walk starts from yesterday, so an unfinished day does
// not break a running streak. A gap of more than one day resets to zero.
func HabitStreak(completions map[string]bool, today time.Time) int {
	if len(completions) == 0 {
		return 0
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if !completions[DateKey(day)] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for completions[DateKey(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// GoalProgress is the percentage of completed milestones, rounded to the
// nearest integer. Empty milestones mean zero progress.
func GoalProgress(milestones []model.Milestone) int {
	if len(milestones) == 0 {
		return 0
	}
	completed := 0
	for _, m := range milestones {
		if m.Completed {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(milestones)) * 100))
}
