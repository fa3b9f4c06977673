package usecase

import (
	"context"
	"sort"
	"strings"

	"dailysync/model"
	"dailysync/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type GoalService struct {
	Gateway *Gateway
}

// SortGoals keeps goals in creation order.
func SortGoals(goals []model.Goal) {
	sort.SliceStable(goals, func(i, j int) bool {
		return goals[i].CreatedAt < goals[j].CreatedAt
	})
}

func (s *GoalService) validateGoal(goal *model.Goal) error {
	goal.Title = strings.TrimSpace(goal.Title)
	if goal.Title == "" {
		return Invalid("goal title is required")
	}
	if goal.Category == "" {
		goal.Category = model.GoalPersonal
	}
	if !goal.Category.Valid() {
		return Invalid("invalid goal category")
	}
	return nil
}

func (s *GoalService) GetUserGoals(ctx context.Context, userID string) ([]model.Goal, error) {
	goals, err := fetchCollection[model.Goal](ctx, s.Gateway, userID, model.CollectionGoals)
	if err != nil {
		return nil, err
	}
	SortGoals(goals)
	return goals, nil
}

func (s *GoalService) CreateGoal(ctx context.Context, userID string, goal *model.Goal) (string, error) {
	if err := s.validateGoal(goal); err != nil {
		return "", err
	}
	goal.Progress = GoalProgress(goal.Milestones)
	return s.Gateway.Create(ctx, userID, model.CollectionGoals, goal)
}

func (s *GoalService) UpdateGoal(ctx context.Context, userID, goalID string, fields bson.M) error {
	if title, ok := fields["title"].(string); ok {
		if strings.TrimSpace(title) == "" {
			return Invalid("goal title is required")
		}
	}
	if category, ok := fields["category"].(string); ok {
		if !model.GoalCategory(category).Valid() {
			return Invalid("invalid goal category")
		}
	}
	if _, ok := fields["progress"]; ok {
		// progress is derived; it only changes together with milestones
		return Invalid("progress cannot be set directly")
	}
	return s.Gateway.Update(ctx, userID, model.CollectionGoals, goalID, fields)
}

// saveMilestones persists a milestone mutation together with the recomputed
// progress, so the derived field never drifts from its source.
func (s *GoalService) saveMilestones(ctx context.Context, userID, goalID string, milestones []model.Milestone) error {
	return s.Gateway.Update(ctx, userID, model.CollectionGoals, goalID, bson.M{
		"milestones": milestones,
		"progress":   GoalProgress(milestones),
	})
}

func (s *GoalService) AddMilestone(ctx context.Context, userID, goalID, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return Invalid("milestone title is required")
	}

	var goal model.Goal
	if err := s.Gateway.Store.FindOne(ctx, userID, model.CollectionGoals, goalID, &goal); err != nil {
		return err
	}

	milestones := append(goal.Milestones, model.Milestone{
		ID:    utils.GenerateID(),
		Title: title,
	})
	return s.saveMilestones(ctx, userID, goalID, milestones)
}

func (s *GoalService) ToggleMilestone(ctx context.Context, userID, goalID, milestoneID string) error {
	var goal model.Goal
	if err := s.Gateway.Store.FindOne(ctx, userID, model.CollectionGoals, goalID, &goal); err != nil {
		return err
	}

	found := false
	milestones := make([]model.Milestone, len(goal.Milestones))
	for i, m := range goal.Milestones {
		if m.ID == milestoneID {
			m.Completed = !m.Completed
			found = true
		}
		milestones[i] = m
	}
	if !found {
		return Invalid("milestone not found")
	}
	return s.saveMilestones(ctx, userID, goalID, milestones)
}

func (s *GoalService) DeleteMilestone(ctx context.Context, userID, goalID, milestoneID string) error {
	var goal model.Goal
	if err := s.Gateway.Store.FindOne(ctx, userID, model.CollectionGoals, goalID, &goal); err != nil {
		return err
	}

	milestones := make([]model.Milestone, 0, len(goal.Milestones))
	for _, m := range goal.Milestones {
		if m.ID != milestoneID {
			milestones = append(milestones, m)
		}
	}
	return s.saveMilestones(ctx, userID, goalID, milestones)
}

func (s *GoalService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	return s.Gateway.Delete(ctx, userID, model.CollectionGoals, goalID)
}
