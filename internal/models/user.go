package models

import "time"

// User statuses accepted by the API.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User represents a registered user record.
// The email uniqueness invariant is enforced by the database index,
// not by application code.
type User struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"type:varchar(100)"`
	Email     string     `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Phone     string     `json:"phone" gorm:"type:varchar(30)"`
	City      string     `json:"city" gorm:"type:varchar(100)"`
	Status    string     `json:"status" gorm:"type:varchar(10);default:active"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	LastLogin *time.Time `json:"lastLogin"` // never written by this API; reserved for login tracking
}

// CreateUserInput is the payload for creating a user.
type CreateUserInput struct {
	Name   string `json:"name" validate:"required,min=2"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"required,min=5"`
	City   string `json:"city" validate:"required,min=2"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateUserInput is the payload for a partial update. Every field is
// optional; nil means "leave unchanged", so an empty payload is a valid
// no-op update.
type UpdateUserInput struct {
	Name   *string `json:"name" validate:"omitempty,min=2"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Phone  *string `json:"phone" validate:"omitempty,min=5"`
	City   *string `json:"city" validate:"omitempty,min=2"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive"`
}
