package usecase

import (
	"context"
	"sort"
	"strings"

	"dailysync/model"
	"dailysync/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type RoutineService struct {
	Gateway *Gateway
}

// SortRoutines keeps routines in creation order.
func SortRoutines(routines []model.Routine) {
	sort.SliceStable(routines, func(i, j int) bool {
		return routines[i].CreatedAt < routines[j].CreatedAt
	})
}

func sortActivities(activities []model.Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Order < activities[j].Order
	})
}

func (s *RoutineService) validateRoutine(routine *model.Routine) error {
	routine.Name = strings.TrimSpace(routine.Name)
	if routine.Name == "" {
		return Invalid("routine name is required")
	}
	if routine.Type == "" {
		routine.Type = model.RoutineCustom
	}
	if !routine.Type.Valid() {
		return Invalid("invalid routine type")
	}
	return nil
}

func (s *RoutineService) GetUserRoutines(ctx context.Context, userID string) ([]model.Routine, error) {
	routines, err := fetchCollection[model.Routine](ctx, s.Gateway, userID, model.CollectionRoutines)
	if err != nil {
		return nil, err
	}
	SortRoutines(routines)
	for i := range routines {
		sortActivities(routines[i].Activities)
	}
	return routines, nil
}

func (s *RoutineService) CreateRoutine(ctx context.Context, userID string, routine *model.Routine) (string, error) {
	if err := s.validateRoutine(routine); err != nil {
		return "", err
	}
	return s.Gateway.Create(ctx, userID, model.CollectionRoutines, routine)
}

// CreateFromTemplate seeds a routine with the stock activity list for the
// given type.
func (s *RoutineService) CreateFromTemplate(ctx context.Context, userID string, routineType model.RoutineType) (string, error) {
	var routine model.Routine
	switch routineType {
	case model.RoutineMorning:
		routine = model.Routine{
			Name: "Morning Routine",
			Type: model.RoutineMorning,
			Activities: []model.Activity{
				{ID: utils.GenerateID(), Title: "Drink water", Duration: 2, Icon: model.IconWater, Order: 0},
				{ID: utils.GenerateID(), Title: "Stretch", Duration: 10, Icon: model.IconStrength, Order: 1},
				{ID: utils.GenerateID(), Title: "Meditate", Duration: 10, Icon: model.IconMeditation, Order: 2},
				{ID: utils.GenerateID(), Title: "Plan the day", Duration: 5, Icon: model.IconWriting, Order: 3},
			},
		}
	case model.RoutineEvening:
		routine = model.Routine{
			Name: "Evening Routine",
			Type: model.RoutineEvening,
			Activities: []model.Activity{
				{ID: utils.GenerateID(), Title: "Review the day", Duration: 5, Icon: model.IconWriting, Order: 0},
				{ID: utils.GenerateID(), Title: "Read", Duration: 20, Icon: model.IconBook, Order: 1},
				{ID: utils.GenerateID(), Title: "Prepare for sleep", Duration: 10, Icon: model.IconSleep, Order: 2},
			},
		}
	case model.RoutineCustom:
		return "", Invalid("no template for custom routines")
	default:
		return "", Invalid("invalid routine type")
	}
	return s.Gateway.Create(ctx, userID, model.CollectionRoutines, &routine)
}

func (s *RoutineService) UpdateRoutine(ctx context.Context, userID, routineID string, fields bson.M) error {
	if name, ok := fields["name"].(string); ok {
		if strings.TrimSpace(name) == "" {
			return Invalid("routine name is required")
		}
	}
	if t, ok := fields["type"].(string); ok {
		if !model.RoutineType(t).Valid() {
			return Invalid("invalid routine type")
		}
	}
	return s.Gateway.Update(ctx, userID, model.CollectionRoutines, routineID, fields)
}

func (s *RoutineService) SetActive(ctx context.Context, userID, routineID string, active bool) error {
	return s.Gateway.Update(ctx, userID, model.CollectionRoutines, routineID, bson.M{
		"active": active,
	})
}

func (s *RoutineService) saveActivities(ctx context.Context, userID, routineID string, activities []model.Activity) error {
	return s.Gateway.Update(ctx, userID, model.CollectionRoutines, routineID, bson.M{
		"activities": activities,
	})
}

// AddActivity appends an activity at the end of the routine.
func (s *RoutineService) AddActivity(ctx context.Context, userID, routineID string, activity model.Activity) error {
	activity.Title = strings.TrimSpace(activity.Title)
	if activity.Title == "" {
		return Invalid("activity title is required")
	}
	if activity.Icon == "" {
		activity.Icon = model.IconStrength
	}
	if !activity.Icon.Valid() {
		return Invalid("invalid activity icon")
	}

	var routine model.Routine
	if err := s.Gateway.Store.FindOne(ctx, userID, model.CollectionRoutines, routineID, &routine); err != nil {
		return err
	}

	activity.ID = utils.GenerateID()
	activity.Order = len(routine.Activities)
	return s.saveActivities(ctx, userID, routineID, append(routine.Activities, activity))
}

func (s *RoutineService) ToggleActivity(ctx context.Context, userID, routineID, activityID string) error {
	var routine model.Routine
	if err := s.Gateway.Store.FindOne(ctx, userID, model.CollectionRoutines, routineID, &routine); err != nil {
		return err
	}

	found := false
	activities := make([]model.Activity, len(routine.Activities))
	for i, a := range routine.Activities {
		if a.ID == activityID {
			a.Completed = !a.Completed
			found = true
		}
		activities[i] = a
	}
	if !found {
		return Invalid("activity not found")
	}
	return s.saveActivities(ctx, userID, routineID, activities)
}

func (s *RoutineService) RemoveActivity(ctx context.Context, userID, routineID, activityID string) error {
	var routine model.Routine
	if err := s.Gateway.Store.FindOne(ctx, userID, model.CollectionRoutines, routineID, &routine); err != nil {
		return err
	}

	activities := make([]model.Activity, 0, len(routine.Activities))
	for _, a := range routine.Activities {
		if a.ID != activityID {
			activities = append(activities, a)
		}
	}
	for i := range activities {
		activities[i].Order = i
	}
	return s.saveActivities(ctx, userID, routineID, activities)
}

func (s *RoutineService) DeleteRoutine(ctx context.Context, userID, routineID string) error {
	return s.Gateway.Delete(ctx, userID, model.CollectionRoutines, routineID)
}
