package usecase

import (
	"context"
	"sort"
	"strings"

	"dailysync/model"

	"go.mongodb.org/mongo-driver/bson"
)

type NoteService struct {
	Gateway *Gateway
}

// SortNotes puts pinned notes first, then most recently updated.
func SortNotes(notes []model.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].Pinned != notes[j].Pinned {
			return notes[i].Pinned
		}
		return notes[i].UpdatedAt > notes[j].UpdatedAt
	})
}

func (s *NoteService) validateNote(note *model.Note) error {
	note.Title = strings.TrimSpace(note.Title)
	if note.Title == "" {
		return Invalid("note title is required")
	}
	if len(note.Title) > 200 {
		return Invalid("note title exceeds maximum length")
	}
	if strings.TrimSpace(note.Content) == "" {
		return Invalid("note content is required")
	}
	if len(note.Content) > 50000 {
		return Invalid("note content exceeds maximum length")
	}
	if note.Color == "" {
		note.Color = model.NoteDefault
	}
	if !note.Color.Valid() {
		return Invalid("invalid note color")
	}
	return nil
}

func (s *NoteService) GetUserNotes(ctx context.Context, userID string) ([]model.Note, error) {
	notes, err := fetchCollection[model.Note](ctx, s.Gateway, userID, model.CollectionNotes)
	if err != nil {
		return nil, err
	}
	SortNotes(notes)
	return notes, nil
}

func (s *NoteService) CreateNote(ctx context.Context, userID string, note *model.Note) (string, error) {
	if err := s.validateNote(note); err != nil {
		return "", err
	}
	return s.Gateway.Create(ctx, userID, model.CollectionNotes, note)
}

func (s *NoteService) UpdateNote(ctx context.Context, userID, noteID string, fields bson.M) error {
	if title, ok := fields["title"].(string); ok {
		if strings.TrimSpace(title) == "" {
			return Invalid("note title is required")
		}
	}
	if color, ok := fields["color"].(string); ok {
		if !model.NoteColor(color).Valid() {
			return Invalid("invalid note color")
		}
	}
	return s.Gateway.Update(ctx, userID, model.CollectionNotes, noteID, fields)
}

func (s *NoteService) TogglePin(ctx context.Context, userID, noteID string) error {
	var note model.Note
	if err := s.Gateway.Store.FindOne(ctx, userID, model.CollectionNotes, noteID, &note); err != nil {
		return err
	}
	return s.Gateway.Update(ctx, userID, model.CollectionNotes, noteID, bson.M{
		"pinned": !note.Pinned,
	})
}

func (s *NoteService) DeleteNote(ctx context.Context, userID, noteID string) error {
	return s.Gateway.Delete(ctx, userID, model.CollectionNotes, noteID)
}
