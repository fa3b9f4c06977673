package usecase

import (
	"context"
	"errors"
	"testing"

	"dailysync/model"
)

func event(id, date, start string) model.Event {
	e := model.Event{Title: "event " + id, Date: date, StartTime: start}
	e.ID = id
	return e
}

func TestSortEvents(t *testing.T) {
	events := []model.Event{
		event("late", "2024-05-02", "09:00"),
		event("early-afternoon", "2024-05-01", "14:00"),
		event("early-morning", "2024-05-01", "08:30"),
	}

	SortEvents(events)

	want := []string{"early-morning", "early-afternoon", "late"}
	for i, id := range want {
		if events[i].ID != id {
			t.Errorf("position %d = %q, want %q", i, events[i].ID, id)
		}
	}
}

func TestCreateEventValidation(t *testing.T) {
	service := &EventService{Gateway: NewGateway(&fakeStore{}, nil, &fakePublisher{})}
	ctx := context.Background()

	tests := []struct {
		name    string
		event   model.Event
		wantErr bool
	}{
		{"valid", model.Event{Title: "standup", Date: "2024-05-01", StartTime: "09:00"}, false},
		{"no date", model.Event{Title: "standup"}, true},
		{"bad date format", model.Event{Title: "standup", Date: "05/01/2024"}, true},
		{"bad start time", model.Event{Title: "standup", Date: "2024-05-01", StartTime: "9am"}, true},
		{"bad end time", model.Event{Title: "standup", Date: "2024-05-01", EndTime: "25:00"}, true},
		{"times optional", model.Event{Title: "all day", Date: "2024-05-01"}, false},
		{"bad category", model.Event{Title: "x", Date: "2024-05-01", Category: "party"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateEvent(ctx, "user-1", &tt.event)
			if (err != nil) != tt.wantErr {
				t.Errorf("CreateEvent() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrValidation) {
				t.Errorf("CreateEvent() error = %v, want a validation error", err)
			}
		})
	}
}

func TestCreateEventDefaultsCategory(t *testing.T) {
	service := &EventService{Gateway: NewGateway(&fakeStore{}, nil, &fakePublisher{})}

	e := &model.Event{Title: "lunch", Date: "2024-05-01"}
	if _, err := service.CreateEvent(context.Background(), "user-1", e); err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}
	if e.Category != model.EventOther {
		t.Errorf("category = %q, want %q", e.Category, model.EventOther)
	}
}
