package usecase

import (
	"context"
	"time"

	"dailysync/model"
)

// SummaryService is the cross-collection consumer: it aggregates counts over
// the current snapshots for the dashboard widget. It only reads snapshots,
// never mutates them.
type SummaryService struct {
	Tasks    *TaskService
	Events   *EventService
	Notes    *NoteService
	Habits   *HabitService
	Goals    *GoalService
	Routines *RoutineService
}

func (s *SummaryService) GetDashboardSummary(ctx context.Context, userID string) (*model.DashboardSummary, error) {
	summary := &model.DashboardSummary{}
	today := DateKey(time.Now())

	tasks, err := s.Tasks.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary.TotalTasks = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			summary.CompletedTasks++
		} else {
			summary.PendingTasks++
		}
	}

	events, err := s.Events.GetUserEvents(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		if e.Date == today {
			summary.EventsToday++
		}
	}

	notes, err := s.Notes.GetUserNotes(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary.TotalNotes = len(notes)
	for _, n := range notes {
		if n.Pinned {
			summary.PinnedNotes++
		}
	}

	habits, err := s.Habits.GetUserHabits(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary.TotalHabits = len(habits)
	for _, h := range habits {
		if h.Streak > summary.BestStreak {
			summary.BestStreak = h.Streak
		}
		if h.Streak > 0 {
			summary.ActiveStreaks++
		}
		if h.Completions[today] {
			summary.DoneToday++
		}
	}

	goals, err := s.Goals.GetUserGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary.TotalGoals = len(goals)
	totalProgress := 0
	for _, g := range goals {
		totalProgress += g.Progress
		if g.Progress == 100 {
			summary.CompletedGoals++
		}
	}
	if len(goals) > 0 {
		summary.AvgProgress = totalProgress / len(goals)
	}

	routines, err := s.Routines.GetUserRoutines(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary.TotalRoutines = len(routines)
	for _, r := range routines {
		if r.Active {
			summary.ActiveRoutines++
		}
	}

	return summary, nil
}
