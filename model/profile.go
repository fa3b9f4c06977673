package model

// Profile is a per-user singleton document, written with whole-document
// replace semantics rather than field merge.
type Profile struct {
	UserID      string `bson:"_id,omitempty" json:"-"`
	DisplayName string `bson:"display_name,omitempty" json:"displayName,omitempty"`
	Email       string `bson:"email,omitempty" json:"email,omitempty"`
	Theme       string `bson:"theme,omitempty" json:"theme,omitempty"`
	AccentColor string `bson:"accent_color,omitempty" json:"accentColor,omitempty"`
	UpdatedAt   int64  `bson:"updated_at" json:"updatedAt"`
}
