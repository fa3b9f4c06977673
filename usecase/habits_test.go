package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"dailysync/model"

	"go.mongodb.org/mongo-driver/bson"
)

func TestToggleCompletionRecomputesStreak(t *testing.T) {
	yesterday := DateKey(time.Now().AddDate(0, 0, -1))
	stored := model.Habit{
		Name:        "read",
		Completions: map[string]bool{yesterday: true},
		Streak:      1,
	}
	stored.ID = "h1"

	store := &fakeStore{
		findOne: func(id string, out any) error {
			*out.(*model.Habit) = stored
			return nil
		},
	}
	service := &HabitService{Gateway: NewGateway(store, nil, &fakePublisher{})}

	if err := service.ToggleCompletion(context.Background(), "user-1", "h1", time.Now()); err != nil {
		t.Fatalf("ToggleCompletion() error = %v", err)
	}
	if len(store.updates) != 1 {
		t.Fatalf("store updates = %d, want 1", len(store.updates))
	}

	fields := store.updates[0]
	completions, ok := fields["completions"].(map[string]bool)
	if !ok {
		t.Fatalf("update missing completions map: %+v", fields)
	}
	if !completions[DateKey(time.Now())] {
		t.Error("today not marked after toggle")
	}
	if streak := fields["streak"].(int); streak != 2 {
		t.Errorf("streak = %d, want 2 (yesterday + today)", streak)
	}
}

func TestToggleCompletionUnmarksDay(t *testing.T) {
	today := DateKey(time.Now())
	stored := model.Habit{
		Name:        "read",
		Completions: map[string]bool{today: true},
		Streak:      1,
	}
	stored.ID = "h1"

	store := &fakeStore{
		findOne: func(id string, out any) error {
			*out.(*model.Habit) = stored
			return nil
		},
	}
	service := &HabitService{Gateway: NewGateway(store, nil, &fakePublisher{})}

	if err := service.ToggleCompletion(context.Background(), "user-1", "h1", time.Now()); err != nil {
		t.Fatalf("ToggleCompletion() error = %v", err)
	}

	fields := store.updates[0]
	completions := fields["completions"].(map[string]bool)
	if _, marked := completions[today]; marked {
		t.Error("today still marked after unmark toggle")
	}
	if streak := fields["streak"].(int); streak != 0 {
		t.Errorf("streak = %d, want 0", streak)
	}
}

func TestUpdateHabitRejectsDirectStreak(t *testing.T) {
	service := &HabitService{Gateway: NewGateway(&fakeStore{}, nil, &fakePublisher{})}

	err := service.UpdateHabit(context.Background(), "user-1", "h1", bson.M{"streak": 10})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("UpdateHabit() error = %v, want a validation error", err)
	}
}

func TestCreateHabitDefaults(t *testing.T) {
	store := &fakeStore{}
	service := &HabitService{Gateway: NewGateway(store, nil, &fakePublisher{})}

	habit := &model.Habit{Name: "drink water"}
	if _, err := service.CreateHabit(context.Background(), "user-1", habit); err != nil {
		t.Fatalf("CreateHabit() error = %v", err)
	}
	if habit.Icon != model.IconStrength {
		t.Errorf("icon = %q, want default %q", habit.Icon, model.IconStrength)
	}
	if habit.Frequency != model.FrequencyDaily {
		t.Errorf("frequency = %q, want default %q", habit.Frequency, model.FrequencyDaily)
	}
	if habit.Streak != 0 {
		t.Errorf("streak = %d, want 0 for a fresh habit", habit.Streak)
	}
}
