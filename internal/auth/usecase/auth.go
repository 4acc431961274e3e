package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"ai-task-manager/internal/auth"
	repo "ai-task-manager/internal/auth/repository"
	"ai-task-manager/internal/model"
)

const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Register creates an account and returns a signed-in session.
func (uc *implUseCase) Register(ctx context.Context, input auth.RegisterInput) (auth.TokenOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return auth.TokenOutput{}, auth.ErrInvalidCredentials
	}
	if len(input.Password) < 8 {
		return auth.TokenOutput{}, auth.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register bcrypt: %v", err)
		return auth.TokenOutput{}, err
	}

	user, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(input.FullName),
		Role:         model.RoleUser,
	})
	if err == repo.ErrDuplicateEmail {
		return auth.TokenOutput{}, auth.ErrEmailTaken
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return auth.TokenOutput{}, err
	}

	return uc.issue(ctx, user)
}

// Login checks credentials and returns a session.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.TokenOutput, error) {
	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: strings.TrimSpace(input.Email)})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return auth.TokenOutput{}, err
	}
	if user.ID == "" {
		// Burn a hash comparison anyway so the timing does not reveal
		// whether the account exists.
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(input.Password))
		return auth.TokenOutput{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return auth.TokenOutput{}, auth.ErrInvalidCredentials
	}

	return uc.issue(ctx, user)
}

// Refresh exchanges a refresh token for a fresh pair.
func (uc *implUseCase) Refresh(ctx context.Context, input auth.RefreshInput) (auth.TokenOutput, error) {
	sc, err := uc.jwtManager.VerifyRefresh(input.RefreshToken)
	if err != nil {
		return auth.TokenOutput{}, auth.ErrInvalidToken
	}

	// Re-read the account so a deleted user or changed role takes effect
	// on the next refresh.
	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Refresh GetOneUser: %v", err)
		return auth.TokenOutput{}, err
	}
	if user.ID == "" {
		return auth.TokenOutput{}, auth.ErrInvalidToken
	}

	return uc.issue(ctx, user)
}

// Me returns the caller's profile.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (auth.MeOutput, error) {
	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Me GetOneUser: %v", err)
		return auth.MeOutput{}, err
	}
	if user.ID == "" {
		return auth.MeOutput{}, auth.ErrUserNotFound
	}

	return auth.MeOutput{User: user}, nil
}

func (uc *implUseCase) issue(ctx context.Context, user model.User) (auth.TokenOutput, error) {
	tokens, err := uc.jwtManager.IssuePair(user)
	if err != nil {
		uc.l.Errorf(ctx, "uc.issue IssuePair: %v", err)
		return auth.TokenOutput{}, err
	}
	return auth.TokenOutput{User: user, Tokens: tokens}, nil
}
