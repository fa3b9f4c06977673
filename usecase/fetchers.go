package usecase

import (
	"context"

	"dailysync/model"
	"dailysync/subscription"
)

// Fetchers binds every entity collection to its sorted fetch, for the
// subscription hub.
func Fetchers(
	tasks *TaskService,
	events *EventService,
	notes *NoteService,
	habits *HabitService,
	goals *GoalService,
	routines *RoutineService,
) map[string]subscription.Fetcher {
	return map[string]subscription.Fetcher{
		model.CollectionTodos: func(ctx context.Context, userID string) (any, error) {
			return tasks.GetUserTasks(ctx, userID)
		},
		model.CollectionEvents: func(ctx context.Context, userID string) (any, error) {
			return events.GetUserEvents(ctx, userID)
		},
		model.CollectionNotes: func(ctx context.Context, userID string) (any, error) {
			return notes.GetUserNotes(ctx, userID)
		},
		model.CollectionHabits: func(ctx context.Context, userID string) (any, error) {
			return habits.GetUserHabits(ctx, userID)
		},
		model.CollectionGoals: func(ctx context.Context, userID string) (any, error) {
			return goals.GetUserGoals(ctx, userID)
		},
		model.CollectionRoutines: func(ctx context.Context, userID string) (any, error) {
			return routines.GetUserRoutines(ctx, userID)
		},
	}
}
