// Package scope issues and verifies the JWT pairs that carry a caller's
// identity (user ID, email, role) between requests.
package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"ai-task-manager/internal/model"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrWrongType    = errors.New("wrong token type")
)

// TokenPair is an access/refresh token pair returned on login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int // access token lifetime in seconds
}

// Manager issues and verifies signed tokens.
type Manager interface {
	IssuePair(user model.User) (TokenPair, error)
	Verify(token string) (model.Scope, error)
	VerifyRefresh(token string) (model.Scope, error)
}

type claims struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

type jwtManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// New creates an HMAC-signed token manager.
func New(secret string, accessTTL, refreshTTL time.Duration) Manager {
	return &jwtManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (m *jwtManager) IssuePair(user model.User) (TokenPair, error) {
	access, err := m.sign(user, tokenTypeAccess, m.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := m.sign(user, tokenTypeRefresh, m.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(m.accessTTL.Seconds()),
	}, nil
}

func (m *jwtManager) sign(user model.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		Email:     user.Email,
		Role:      string(user.Role),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *jwtManager) Verify(token string) (model.Scope, error) {
	return m.verify(token, tokenTypeAccess)
}

func (m *jwtManager) VerifyRefresh(token string) (model.Scope, error) {
	return m.verify(token, tokenTypeRefresh)
}

func (m *jwtManager) verify(token, wantType string) (model.Scope, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return model.Scope{}, ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || c.Subject == "" {
		return model.Scope{}, ErrInvalidToken
	}
	if c.TokenType != wantType {
		return model.Scope{}, ErrWrongType
	}

	return model.Scope{
		UserID: c.Subject,
		Email:  c.Email,
		Role:   model.Role(c.Role),
	}, nil
}
