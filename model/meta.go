package model

// Meta carries the fields shared by every mutable record. Timestamps are
// epoch milliseconds, matching the wire format the web client stores.
type Meta struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	UserID    string `bson:"user_id" json:"-"`
	CreatedAt int64  `bson:"created_at" json:"createdAt"`
	UpdatedAt int64  `bson:"updated_at" json:"updatedAt"`
}

// Stamp assigns the identity and creation timestamps. Called exactly once,
// by the mutation gateway, at create time.
func (m *Meta) Stamp(id, userID string, nowMillis int64) {
	m.ID = id
	m.UserID = userID
	m.CreatedAt = nowMillis
	m.UpdatedAt = nowMillis
}

// RecordID returns the record's identifier.
func (m Meta) RecordID() string {
	return m.ID
}

// Record is implemented by every entity that passes through the mutation
// gateway.
type Record interface {
	Stamp(id, userID string, nowMillis int64)
	RecordID() string
}
