package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate moq -out auth_mock.go . AuthStorage

// AuthStorage defines the interface for persisting the session on the client.
// It stores the bearer credential exactly as obtained; the client reads it
// back synchronously before every authenticated request.
type AuthStorage interface {
	// SaveAuth stores the session data, replacing any previous session
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves the stored session
	// Returns ErrAuthNotFound if no session exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes the stored session (logout)
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated checks if a non-expired session exists
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData represents the persisted session: the bearer credential plus the
// profile of the user it was issued to, as returned by POST /api/login.
type AuthData struct {
	Credential    string    `json:"credential"`
	UserID        uuid.UUID `json:"user_id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Surname       string    `json:"surname"`
	Authorization string    `json:"authorization"`
	ExpiresAt     time.Time `json:"expires_at"`
}
