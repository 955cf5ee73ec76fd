package model

import "time"

// User represents an account row in the database. CredentialHash holds the
// Argon2id hash of the account secret, never a generated password.
type User struct {
	ID             int64
	Email          string
	CredentialHash string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RegisterRequest represents an account registration request.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents an account login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries a signed token and the account it belongs to.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse represents account data safe for API responses.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
