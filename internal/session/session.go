// Package session reads the auth provider's token into a Session value.
// It is strictly read-only input: the engine never issues or refreshes
// tokens, it only uses the session to gate which actions are available.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrNoSession    = errors.New("no session in context")
)

type Session struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type ctxKey string

const sessionKey ctxKey = "session"

// Parse validates the bearer token against the shared secret and extracts
// the session claims. Any parse or validation failure yields ErrInvalidToken;
// callers treat that as an anonymous visitor, not a hard failure.
func Parse(tokenStr string, secret []byte) (*Session, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	s := &Session{}
	switch id := claims["user_id"].(type) {
	case string:
		s.UserID = id
	case float64:
		s.UserID = fmt.Sprintf("%.0f", id)
	}
	if email, ok := claims["email"].(string); ok {
		s.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		s.Role = role
	}

	if s.UserID == "" {
		return nil, ErrInvalidToken
	}
	return s, nil
}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey).(*Session)
	return s, ok && s != nil
}
