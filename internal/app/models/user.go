package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Name      string    `json:"name" db:"name" example:"Jordan Rao"`                      // User's display name
	Email     string    `json:"email" db:"email" example:"jordan@college.edu"`            // User's email address
	Phone     string    `json:"phone" db:"phone" example:"+91-9876543210"`                // User's phone number
	Password  string    `json:"-" db:"password"`                                          // User's hashed password (excluded from JSON)
	RoleType  RoleType  `json:"roleType" db:"role_type" example:"STUDENT"`                // User's role (TPO, STUDENT or ALUMNI); fixed at registration
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
}
