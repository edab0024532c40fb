package repository

import (
	"context"

	"github.com/trailforge/backend/domain"
)

type UserRepository interface {
	// GetByID loads a user; the nested profile is included when present.
	GetByID(ctx context.Context, id int) (*domain.User, error)
	// GetByEmail loads a user by login email, including the nested profile.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
