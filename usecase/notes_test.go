package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"dailysync/model"
)

func note(id string, pinned bool, updatedAt int64) model.Note {
	n := model.Note{Title: "note " + id, Content: "body", Pinned: pinned}
	n.ID = id
	n.UpdatedAt = updatedAt
	return n
}

func TestSortNotes(t *testing.T) {
	notes := []model.Note{
		note("old", false, 100),
		note("pinned-old", true, 50),
		note("fresh", false, 300),
		note("pinned-fresh", true, 200),
	}

	SortNotes(notes)

	want := []string{"pinned-fresh", "pinned-old", "fresh", "old"}
	for i, id := range want {
		if notes[i].ID != id {
			t.Errorf("position %d = %q, want %q", i, notes[i].ID, id)
		}
	}
}

func TestCreateNoteValidation(t *testing.T) {
	service := &NoteService{Gateway: NewGateway(&fakeStore{}, nil, &fakePublisher{})}
	ctx := context.Background()

	tests := []struct {
		name    string
		note    model.Note
		wantErr bool
	}{
		{"valid", model.Note{Title: "t", Content: "c"}, false},
		{"missing content", model.Note{Title: "t"}, true},
		{"blank title", model.Note{Title: " ", Content: "c"}, true},
		{"oversized content", model.Note{Title: "t", Content: strings.Repeat("x", 50001)}, true},
		{"bad color", model.Note{Title: "t", Content: "c", Color: "magenta"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateNote(ctx, "user-1", &tt.note)
			if (err != nil) != tt.wantErr {
				t.Errorf("CreateNote() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrValidation) {
				t.Errorf("CreateNote() error = %v, want a validation error", err)
			}
		})
	}
}

func TestCreateNoteDefaultsColor(t *testing.T) {
	service := &NoteService{Gateway: NewGateway(&fakeStore{}, nil, &fakePublisher{})}

	n := &model.Note{Title: "t", Content: "c"}
	if _, err := service.CreateNote(context.Background(), "user-1", n); err != nil {
		t.Fatalf("CreateNote() error = %v", err)
	}
	if n.Color != model.NoteDefault {
		t.Errorf("color = %q, want %q", n.Color, model.NoteDefault)
	}
}
