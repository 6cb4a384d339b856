// Package auth manages the client session: the bearer credential obtained at
// login and the profile of the user it belongs to. The credential is decoded
// (without signature verification - the backend is the verifier) only to
// read its expiry for status display.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kolab-hr/kolabctl/internal/client/storage"
	"github.com/kolab-hr/kolabctl/internal/models"
)

// Service provides session operations over an AuthStorage.
type Service struct {
	storage storage.AuthStorage
}

// NewService creates a new session service.
func NewService(st storage.AuthStorage) *Service {
	return &Service{storage: st}
}

// Credential returns the stored bearer token. Implements the API client's
// token source; called synchronously before every authenticated request.
func (s *Service) Credential(ctx context.Context) (string, error) {
	auth, err := s.storage.GetAuth(ctx)
	if err != nil {
		return "", err
	}
	return auth.Credential, nil
}

// SaveSession persists the credential together with the logged-in user.
// The token's exp claim, when present, bounds the session lifetime.
func (s *Service) SaveSession(ctx context.Context, credential string, user *models.User) error {
	if user == nil {
		return fmt.Errorf("user is nil")
	}

	expiresAt, err := TokenExpiry(credential)
	if err != nil {
		// Токен без exp claim сохраняем без срока действия
		expiresAt = time.Time{}
	}

	return s.storage.SaveAuth(ctx, &storage.AuthData{
		Credential:    credential,
		UserID:        user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Surname:       user.Surname,
		Authorization: string(user.Authorization),
		ExpiresAt:     expiresAt,
	})
}

// Session returns the stored session.
// Returns storage.ErrAuthNotFound when not logged in.
func (s *Service) Session(ctx context.Context) (*storage.AuthData, error) {
	return s.storage.GetAuth(ctx)
}

// Logout removes the stored session.
func (s *Service) Logout(ctx context.Context) error {
	return s.storage.DeleteAuth(ctx)
}

// IsAuthenticated checks if a non-expired session exists.
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	return s.storage.IsAuthenticated(ctx)
}

// TokenExpiry decodes the credential without verifying its signature and
// returns the exp claim.
func TokenExpiry(credential string) (time.Time, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(credential, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("token has no expiration claim")
	}

	return exp.Time, nil
}
