package usecase

import (
	"context"
	"errors"
	"testing"

	"dailysync/model"
)

func taskWithOrder(id string, order int, createdAt int64) model.Task {
	t := model.Task{Title: "task " + id, Order: order}
	t.ID = id
	t.CreatedAt = createdAt
	return t
}

func TestSortTasks(t *testing.T) {
	tests := []struct {
		name  string
		tasks []model.Task
		want  []string
	}{
		{
			name: "manual order wins",
			tasks: []model.Task{
				taskWithOrder("a", 3, 1),
				taskWithOrder("b", 1, 2),
				taskWithOrder("c", 2, 3),
			},
			want: []string{"b", "c", "a"},
		},
		{
			name: "ties fall back to creation time",
			tasks: []model.Task{
				taskWithOrder("late", 1, 200),
				taskWithOrder("early", 1, 100),
			},
			want: []string{"early", "late"},
		},
		{
			name: "full tie falls back to id",
			tasks: []model.Task{
				taskWithOrder("b", 1, 100),
				taskWithOrder("a", 1, 100),
			},
			want: []string{"a", "b"},
		},
		{
			name:  "empty slice",
			tasks: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SortTasks(tt.tasks)
			for i, id := range tt.want {
				if tt.tasks[i].ID != id {
					t.Errorf("position %d = %q, want %q", i, tt.tasks[i].ID, id)
				}
			}
		})
	}
}

func TestCreateTaskValidation(t *testing.T) {
	service := &TaskService{Gateway: NewGateway(&fakeStore{}, nil, &fakePublisher{})}
	ctx := context.Background()

	tests := []struct {
		name    string
		task    model.Task
		wantErr bool
	}{
		{"valid task", model.Task{Title: "buy milk"}, false},
		{"blank title", model.Task{Title: "   "}, true},
		{"bad priority", model.Task{Title: "x", Priority: "urgent"}, true},
		{"known priority", model.Task{Title: "x", Priority: model.PriorityHigh}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateTask(ctx, "user-1", &tt.task)
			if (err != nil) != tt.wantErr {
				t.Errorf("CreateTask() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrValidation) {
				t.Errorf("CreateTask() error = %v, want a validation error", err)
			}
		})
	}
}

func TestCreateTaskDefaultsPriority(t *testing.T) {
	store := &fakeStore{}
	service := &TaskService{Gateway: NewGateway(store, nil, &fakePublisher{})}

	task := &model.Task{Title: "no priority given"}
	if _, err := service.CreateTask(context.Background(), "user-1", task); err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	if task.Priority != model.PriorityMedium {
		t.Errorf("priority = %q, want %q", task.Priority, model.PriorityMedium)
	}
}

func TestUpdateTaskRejectsBlankTitle(t *testing.T) {
	service := &TaskService{Gateway: NewGateway(&fakeStore{}, nil, &fakePublisher{})}

	err := service.UpdateTask(context.Background(), "user-1", "t1", map[string]any{"title": "  "})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("UpdateTask() error = %v, want a validation error", err)
	}
}
