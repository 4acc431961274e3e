package model

import "time"

// Role controls access to the admin surface.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is an account profile. PasswordHash never leaves the repository layer.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
