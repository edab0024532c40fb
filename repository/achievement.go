package repository

import (
	"context"

	"github.com/trailforge/backend/domain"
)

type AchievementRepository interface {
	// ListUnlocks returns a user's unlocks joined to their catalog entries.
	ListUnlocks(ctx context.Context, userID int) ([]domain.AchievementUnlock, error)
}
