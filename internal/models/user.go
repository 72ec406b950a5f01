package models

import "time"

// User mirrors the identity provider's account so entries have an owner row.
type User struct {
	ID        string    `json:"clerk_user_id" db:"clerk_user_id"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
