package usecase

import (
	"context"
	"sort"
	"strings"

	"dailysync/model"

	"go.mongodb.org/mongo-driver/bson"
)

type TaskService struct {
	Gateway *Gateway
}

// SortTasks orders tasks by their manual order field ascending. Gaps are
// fine; ties fall back to insertion order (creation time, then id).
func SortTasks(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Order != tasks[j].Order {
			return tasks[i].Order < tasks[j].Order
		}
		if tasks[i].CreatedAt != tasks[j].CreatedAt {
			return tasks[i].CreatedAt < tasks[j].CreatedAt
		}
		return tasks[i].ID < tasks[j].ID
	})
}

func (s *TaskService) validateTask(task *model.Task) error {
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return Invalid("task title is required")
	}
	if len(task.Title) > 200 {
		return Invalid("task title exceeds maximum length")
	}
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	if !task.Priority.Valid() {
		return Invalid("invalid priority level")
	}
	return nil
}

func (s *TaskService) GetUserTasks(ctx context.Context, userID string) ([]model.Task, error) {
	tasks, err := fetchCollection[model.Task](ctx, s.Gateway, userID, model.CollectionTodos)
	if err != nil {
		return nil, err
	}
	SortTasks(tasks)
	return tasks, nil
}

// CreateTask appends the task at the end of the manual order.
func (s *TaskService) CreateTask(ctx context.Context, userID string, task *model.Task) (string, error) {
	if err := s.validateTask(task); err != nil {
		return "", err
	}

	if task.Order == 0 {
		tasks, err := s.GetUserTasks(ctx, userID)
		if err == nil && len(tasks) > 0 {
			task.Order = tasks[len(tasks)-1].Order + 1
		}
	}

	return s.Gateway.Create(ctx, userID, model.CollectionTodos, task)
}

// UpdateTask merges the given fields; anything absent keeps its value.
func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID string, fields bson.M) error {
	if title, ok := fields["title"].(string); ok {
		title = strings.TrimSpace(title)
		if title == "" {
			return Invalid("task title is required")
		}
		fields["title"] = title
	}
	if p, ok := fields["priority"].(string); ok {
		if !model.Priority(p).Valid() {
			return Invalid("invalid priority level")
		}
	}
	return s.Gateway.Update(ctx, userID, model.CollectionTodos, taskID, fields)
}

func (s *TaskService) ToggleComplete(ctx context.Context, userID, taskID string) error {
	var task model.Task
	if err := s.Gateway.Store.FindOne(ctx, userID, model.CollectionTodos, taskID, &task); err != nil {
		return err
	}
	return s.Gateway.Update(ctx, userID, model.CollectionTodos, taskID, bson.M{
		"completed": !task.Completed,
	})
}

// ReorderTask moves the task to a new manual sort position.
func (s *TaskService) ReorderTask(ctx context.Context, userID, taskID string, order int) error {
	return s.Gateway.Update(ctx, userID, model.CollectionTodos, taskID, bson.M{
		"order": order,
	})
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	return s.Gateway.Delete(ctx, userID, model.CollectionTodos, taskID)
}
