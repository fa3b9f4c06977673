package usecase

import (
	"context"
	"errors"
	"testing"

	"dailysync/model"
)

func TestCreateFromTemplate(t *testing.T) {
	tests := []struct {
		name        string
		routineType model.RoutineType
		wantErr     bool
		wantName    string
	}{
		{"morning template", model.RoutineMorning, false, "Morning Routine"},
		{"evening template", model.RoutineEvening, false, "Evening Routine"},
		{"custom has no template", model.RoutineCustom, true, ""},
		{"unknown type", model.RoutineType("weekend"), true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			service := &RoutineService{Gateway: NewGateway(store, nil, &fakePublisher{})}

			_, err := service.CreateFromTemplate(context.Background(), "user-1", tt.routineType)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateFromTemplate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Errorf("error = %v, want a validation error", err)
				}
				return
			}

			routine := store.inserts[0].(*model.Routine)
			if routine.Name != tt.wantName {
				t.Errorf("routine name = %q, want %q", routine.Name, tt.wantName)
			}
			if len(routine.Activities) == 0 {
				t.Error("template produced no activities")
			}
			for i, a := range routine.Activities {
				if a.ID == "" {
					t.Errorf("activity %d has no id", i)
				}
				if a.Order != i {
					t.Errorf("activity %d order = %d", i, a.Order)
				}
			}
		})
	}
}

func TestRemoveActivityReindexesOrder(t *testing.T) {
	stored := model.Routine{
		Name: "morning",
		Type: model.RoutineMorning,
		Activities: []model.Activity{
			{ID: "a1", Title: "first", Order: 0},
			{ID: "a2", Title: "second", Order: 1},
			{ID: "a3", Title: "third", Order: 2},
		},
	}
	stored.ID = "r1"

	store := &fakeStore{
		findOne: func(id string, out any) error {
			*out.(*model.Routine) = stored
			return nil
		},
	}
	service := &RoutineService{Gateway: NewGateway(store, nil, &fakePublisher{})}

	if err := service.RemoveActivity(context.Background(), "user-1", "r1", "a2"); err != nil {
		t.Fatalf("RemoveActivity() error = %v", err)
	}

	activities := store.updates[0]["activities"].([]model.Activity)
	if len(activities) != 2 {
		t.Fatalf("activities = %d, want 2", len(activities))
	}
	for i, a := range activities {
		if a.Order != i {
			t.Errorf("activity %s order = %d, want %d", a.ID, a.Order, i)
		}
	}
}

func TestToggleActivity(t *testing.T) {
	stored := model.Routine{
		Name: "evening",
		Type: model.RoutineEvening,
		Activities: []model.Activity{
			{ID: "a1", Title: "read", Order: 0},
		},
	}
	stored.ID = "r1"

	store := &fakeStore{
		findOne: func(id string, out any) error {
			*out.(*model.Routine) = stored
			return nil
		},
	}
	service := &RoutineService{Gateway: NewGateway(store, nil, &fakePublisher{})}

	if err := service.ToggleActivity(context.Background(), "user-1", "r1", "a1"); err != nil {
		t.Fatalf("ToggleActivity() error = %v", err)
	}
	activities := store.updates[0]["activities"].([]model.Activity)
	if !activities[0].Completed {
		t.Error("activity not completed after toggle")
	}

	if err := service.ToggleActivity(context.Background(), "user-1", "r1", "missing"); !errors.Is(err, ErrValidation) {
		t.Errorf("ToggleActivity(missing) error = %v, want a validation error", err)
	}
}
