package auth

import (
	"ai-task-manager/internal/model"
	"ai-task-manager/pkg/scope"
)

// --- UseCase Inputs ---

type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

type LoginInput struct {
	Email    string
	Password string
}

type RefreshInput struct {
	RefreshToken string
}

// --- UseCase Outputs ---

// TokenOutput is returned by Register, Login, and Refresh.
type TokenOutput struct {
	User   model.User
	Tokens scope.TokenPair
}

type MeOutput struct {
	User model.User
}
