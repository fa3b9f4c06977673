package model

import "time"

type User struct {
	UserID       string    `bson:"_id,omitempty" json:"user_id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	LastLoginAt  time.Time `bson:"last_login_at,omitempty" json:"last_login_at,omitempty"`
}
