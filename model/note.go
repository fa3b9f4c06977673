package model

type NoteColor string

const (
	NoteDefault NoteColor = "default"
	NoteRed     NoteColor = "red"
	NoteOrange  NoteColor = "orange"
	NoteYellow  NoteColor = "yellow"
	NoteGreen   NoteColor = "green"
	NoteBlue    NoteColor = "blue"
	NotePurple  NoteColor = "purple"
)

func (c NoteColor) Valid() bool {
	switch c {
	case NoteDefault, NoteRed, NoteOrange, NoteYellow, NoteGreen, NoteBlue, NotePurple:
		return true
	}
	return false
}

type Note struct {
	Meta    `bson:",inline"`
	Title   string    `bson:"title" json:"title"`
	Content string    `bson:"content" json:"content"`
	Color   NoteColor `bson:"color" json:"color"`
	Folder  string    `bson:"folder,omitempty" json:"folder,omitempty"`
	Pinned  bool      `bson:"pinned" json:"pinned"`
}
