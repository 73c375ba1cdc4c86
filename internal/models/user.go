package models

import "time"

// User represents a user account in the system.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose this to the client
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateUserInput is the payload for registering a new account.
type CreateUserInput struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateUserInput carries a partial update. Nil fields keep their prior
// value; present fields are validated with the same rules as creation.
type UpdateUserInput struct {
	Name     *string `json:"name" validate:"omitnil,min=1"`
	Email    *string `json:"email" validate:"omitnil,email"`
	Password *string `json:"password" validate:"omitnil,min=6"`
}

// LoginInput is the payload for password login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UserResponse is the client-facing projection of a User. The simple variant
// drops the email field entirely.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// NewUserResponse builds the full projection of a user.
func NewUserResponse(u User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// NewSimpleUserResponse builds the reduced projection (id and name only).
func NewSimpleUserResponse(u User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name}
}
