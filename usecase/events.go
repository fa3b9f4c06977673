package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"dailysync/model"

	"go.mongodb.org/mongo-driver/bson"
)

type EventService struct {
	Gateway *Gateway
}

// SortEvents orders events chronologically by date, then start time.
func SortEvents(events []model.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].StartTime < events[j].StartTime
	})
}

func validTimeOfDay(value string) bool {
	_, err := time.Parse("15:04", value)
	return err == nil
}

func (s *EventService) validateEvent(event *model.Event) error {
	event.Title = strings.TrimSpace(event.Title)
	if event.Title == "" {
		return Invalid("event title is required")
	}
	if event.Date == "" {
		return Invalid("event date is required")
	}
	if _, err := time.Parse("2006-01-02", event.Date); err != nil {
		return Invalid("event date must be YYYY-MM-DD")
	}
	if event.StartTime != "" && !validTimeOfDay(event.StartTime) {
		return Invalid("start time must be HH:MM")
	}
	if event.EndTime != "" && !validTimeOfDay(event.EndTime) {
		return Invalid("end time must be HH:MM")
	}
	if event.Category == "" {
		event.Category = model.EventOther
	}
	if !event.Category.Valid() {
		return Invalid("invalid event category")
	}
	// recurrence_rule is stored as given; nothing interprets it
	return nil
}

func (s *EventService) GetUserEvents(ctx context.Context, userID string) ([]model.Event, error) {
	events, err := fetchCollection[model.Event](ctx, s.Gateway, userID, model.CollectionEvents)
	if err != nil {
		return nil, err
	}
	SortEvents(events)
	return events, nil
}

func (s *EventService) CreateEvent(ctx context.Context, userID string, event *model.Event) (string, error) {
	if err := s.validateEvent(event); err != nil {
		return "", err
	}
	return s.Gateway.Create(ctx, userID, model.CollectionEvents, event)
}

func (s *EventService) UpdateEvent(ctx context.Context, userID, eventID string, fields bson.M) error {
	if title, ok := fields["title"].(string); ok {
		if strings.TrimSpace(title) == "" {
			return Invalid("event title is required")
		}
	}
	if date, ok := fields["date"].(string); ok {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return Invalid("event date must be YYYY-MM-DD")
		}
	}
	if category, ok := fields["category"].(string); ok {
		if !model.EventCategory(category).Valid() {
			return Invalid("invalid event category")
		}
	}
	return s.Gateway.Update(ctx, userID, model.CollectionEvents, eventID, fields)
}

func (s *EventService) DeleteEvent(ctx context.Context, userID, eventID string) error {
	return s.Gateway.Delete(ctx, userID, model.CollectionEvents, eventID)
}
