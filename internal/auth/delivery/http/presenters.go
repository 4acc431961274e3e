package http

import (
	"time"

	"ai-task-manager/internal/auth"
	"ai-task-manager/internal/model"
)

// --- Request DTOs ---

type registerReq struct {
	Email    string `json:"email"     binding:"required,email"`
	Password string `json:"password"  binding:"required,min=8,max=128"`
	FullName string `json:"full_name" binding:"max=255"`
}

func (r registerReq) toInput() auth.RegisterInput {
	return auth.RegisterInput{
		Email:    r.Email,
		Password: r.Password,
		FullName: r.FullName,
	}
}

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (r refreshReq) toInput() auth.RefreshInput {
	return auth.RefreshInput{RefreshToken: r.RefreshToken}
}

// --- Response DTOs ---

type userResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	Role      string    `json:"role"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

type tokenResp struct {
	User         userResp `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int      `json:"expires_in"`
}

func (h *handler) newTokenResp(out auth.TokenOutput) tokenResp {
	return tokenResp{
		User:         newUserResp(out.User),
		AccessToken:  out.Tokens.AccessToken,
		RefreshToken: out.Tokens.RefreshToken,
		TokenType:    "bearer",
		ExpiresIn:    out.Tokens.ExpiresIn,
	}
}

type meResp struct {
	User userResp `json:"user"`
}

func (h *handler) newMeResp(out auth.MeOutput) meResp {
	return meResp{User: newUserResp(out.User)}
}
