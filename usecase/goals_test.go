package usecase

import (
	"context"
	"errors"
	"testing"

	"dailysync/model"

	"go.mongodb.org/mongo-driver/bson"
)

func goalWithMilestones(id string, milestones ...model.Milestone) model.Goal {
	g := model.Goal{Title: "goal " + id, Milestones: milestones}
	g.ID = id
	return g
}

func TestToggleMilestoneRecomputesProgress(t *testing.T) {
	stored := goalWithMilestones("g1",
		model.Milestone{ID: "m1", Title: "first", Completed: true},
		model.Milestone{ID: "m2", Title: "second"},
		model.Milestone{ID: "m3", Title: "third"},
		model.Milestone{ID: "m4", Title: "fourth"},
	)

	store := &fakeStore{
		findOne: func(id string, out any) error {
			*out.(*model.Goal) = stored
			return nil
		},
	}
	service := &GoalService{Gateway: NewGateway(store, nil, &fakePublisher{})}

	if err := service.ToggleMilestone(context.Background(), "user-1", "g1", "m2"); err != nil {
		t.Fatalf("ToggleMilestone() error = %v", err)
	}
	if len(store.updates) != 1 {
		t.Fatalf("store updates = %d, want 1", len(store.updates))
	}

	fields := store.updates[0]
	if progress := fields["progress"].(int); progress != 50 {
		t.Errorf("progress = %d, want 50 (2 of 4 done)", progress)
	}
	milestones := fields["milestones"].([]model.Milestone)
	for _, m := range milestones {
		if m.ID == "m2" && !m.Completed {
			t.Error("toggled milestone not completed in the persisted set")
		}
	}
}

func TestToggleMilestoneUnknownID(t *testing.T) {
	stored := goalWithMilestones("g1", model.Milestone{ID: "m1", Title: "only"})
	store := &fakeStore{
		findOne: func(id string, out any) error {
			*out.(*model.Goal) = stored
			return nil
		},
	}
	service := &GoalService{Gateway: NewGateway(store, nil, &fakePublisher{})}

	err := service.ToggleMilestone(context.Background(), "user-1", "g1", "nope")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("ToggleMilestone() error = %v, want a validation error", err)
	}
	if len(store.updates) != 0 {
		t.Errorf("store saw %d updates for an unknown milestone", len(store.updates))
	}
}

func TestDeleteMilestoneRecomputesProgress(t *testing.T) {
	stored := goalWithMilestones("g1",
		model.Milestone{ID: "m1", Title: "done", Completed: true},
		model.Milestone{ID: "m2", Title: "pending"},
	)
	store := &fakeStore{
		findOne: func(id string, out any) error {
			*out.(*model.Goal) = stored
			return nil
		},
	}
	service := &GoalService{Gateway: NewGateway(store, nil, &fakePublisher{})}

	if err := service.DeleteMilestone(context.Background(), "user-1", "g1", "m2"); err != nil {
		t.Fatalf("DeleteMilestone() error = %v", err)
	}

	fields := store.updates[0]
	if progress := fields["progress"].(int); progress != 100 {
		t.Errorf("progress = %d, want 100 after dropping the pending milestone", progress)
	}
	if milestones := fields["milestones"].([]model.Milestone); len(milestones) != 1 {
		t.Errorf("persisted milestones = %d, want 1", len(milestones))
	}
}

func TestCreateGoalDerivesProgress(t *testing.T) {
	store := &fakeStore{}
	service := &GoalService{Gateway: NewGateway(store, nil, &fakePublisher{})}

	goal := &model.Goal{
		Title: "ship it",
		Milestones: []model.Milestone{
			{ID: "m1", Completed: true},
			{ID: "m2"},
		},
	}
	if _, err := service.CreateGoal(context.Background(), "user-1", goal); err != nil {
		t.Fatalf("CreateGoal() error = %v", err)
	}
	if goal.Progress != 50 {
		t.Errorf("progress = %d, want 50", goal.Progress)
	}
}

func TestUpdateGoalRejectsDirectProgress(t *testing.T) {
	service := &GoalService{Gateway: NewGateway(&fakeStore{}, nil, &fakePublisher{})}

	err := service.UpdateGoal(context.Background(), "user-1", "g1", bson.M{"progress": 80})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("UpdateGoal() error = %v, want a validation error", err)
	}
}
