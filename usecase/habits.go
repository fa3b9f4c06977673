package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"dailysync/model"

	"go.mongodb.org/mongo-driver/bson"
)

type HabitService struct {
	Gateway *Gateway
}

// SortHabits keeps habits in creation order.
func SortHabits(habits []model.Habit) {
	sort.SliceStable(habits, func(i, j int) bool {
		return habits[i].CreatedAt < habits[j].CreatedAt
	})
}

func (s *HabitService) validateHabit(habit *model.Habit) error {
	habit.Name = strings.TrimSpace(habit.Name)
	if habit.Name == "" {
		return Invalid("habit name is required")
	}
	if habit.Icon == "" {
		habit.Icon = model.IconStrength
	}
	if !habit.Icon.Valid() {
		return Invalid("invalid habit icon")
	}
	if habit.Frequency == "" {
		habit.Frequency = model.FrequencyDaily
	}
	if !habit.Frequency.Valid() {
		return Invalid("invalid habit frequency")
	}
	return nil
}

func (s *HabitService) GetUserHabits(ctx context.Context, userID string) ([]model.Habit, error) {
	habits, err := fetchCollection[model.Habit](ctx, s.Gateway, userID, model.CollectionHabits)
	if err != nil {
		return nil, err
	}
	SortHabits(habits)
	return habits, nil
}

func (s *HabitService) CreateHabit(ctx context.Context, userID string, habit *model.Habit) (string, error) {
	if err := s.validateHabit(habit); err != nil {
		return "", err
	}
	habit.Streak = HabitStreak(habit.Completions, time.Now())
	return s.Gateway.Create(ctx, userID, model.CollectionHabits, habit)
}

// ToggleCompletion flips one day's completion mark and persists the
// recomputed streak in the same write, keeping the derived field consistent
// with its source.
func (s *HabitService) ToggleCompletion(ctx context.Context, userID, habitID string, day time.Time) error {
	var habit model.Habit
	if err := s.Gateway.Store.FindOne(ctx, userID, model.CollectionHabits, habitID, &habit); err != nil {
		return err
	}

	completions := habit.Completions
	if completions == nil {
		completions = make(map[string]bool)
	}
	key := DateKey(day)
	if completions[key] {
		delete(completions, key)
	} else {
		completions[key] = true
	}

	return s.Gateway.Update(ctx, userID, model.CollectionHabits, habitID, bson.M{
		"completions": completions,
		"streak":      HabitStreak(completions, time.Now()),
	})
}

func (s *HabitService) UpdateHabit(ctx context.Context, userID, habitID string, fields bson.M) error {
	if name, ok := fields["name"].(string); ok {
		if strings.TrimSpace(name) == "" {
			return Invalid("habit name is required")
		}
	}
	if icon, ok := fields["icon"].(string); ok {
		if !model.HabitIcon(icon).Valid() {
			return Invalid("invalid habit icon")
		}
	}
	if _, ok := fields["streak"]; ok {
		// streak is derived; it only changes together with completions
		return Invalid("streak cannot be set directly")
	}
	return s.Gateway.Update(ctx, userID, model.CollectionHabits, habitID, fields)
}

func (s *HabitService) DeleteHabit(ctx context.Context, userID, habitID string) error {
	return s.Gateway.Delete(ctx, userID, model.CollectionHabits, habitID)
}
