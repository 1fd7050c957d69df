package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	UserID       int64     `json:"user_id" db:"user_id"`             // Primary key
	Email        string    `json:"email" db:"email"`                 // Unique email, stored lowercased
	PasswordHash string    `json:"-" db:"password_hash"`             // Hashed password
	Phone        string    `json:"phone" db:"phone"`                 // Phone number
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`       // Last update timestamp
}
