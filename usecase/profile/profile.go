package profile

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/trailforge/backend/domain"
	"github.com/trailforge/backend/repository"
	"github.com/trailforge/backend/usecase"
)

// View is the denormalized profile projection. It is assembled per request
// and never persisted or cached.
type View struct {
	ID      int            `json:"id"`
	Email   string         `json:"email"`
	XP      int            `json:"xp"`
	Level   int            `json:"level"`
	Profile domain.Profile `json:"profile"`
	Stats   Stats          `json:"stats"`
	Badges  []Badge        `json:"badges"`
	Devices []Device       `json:"devices"`
}

// Stats aggregates the user's hike activities. TotalElevation, LongestHike
// and HighestElevation are declared in the shape but not yet computed; they
// stay zero until activity payloads carry reliable elevation data.
type Stats struct {
	TotalHikes       int     `json:"totalHikes"`
	TotalDistance    float64 `json:"totalDistance"`
	TotalElevation   float64 `json:"totalElevation"`
	LongestHike      float64 `json:"longestHike"`
	HighestElevation float64 `json:"highestElevation"`
}

// Badge is the flat projection of an achievement unlock. Unlocked is a
// structural constant: only unlocked achievements appear here.
type Badge struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Unlocked    bool      `json:"unlocked"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

// Device tracking has no data source yet; the list is declared but always
// empty.
type Device struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UnlockedBadge is the achievements-endpoint projection, carrying the XP
// value the profile view omits.
type UnlockedBadge struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	XPValue     int       `json:"xpValue"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

type UseCase struct {
	users        repository.UserRepository
	activities   repository.ActivityRepository
	achievements repository.AchievementRepository
	logger       *zap.Logger
}

func New(
	users repository.UserRepository,
	activities repository.ActivityRepository,
	achievements repository.AchievementRepository,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:        users,
		activities:   activities,
		achievements: achievements,
		logger:       logger,
	}
}

// GetView fans out the independent relation reads for one user, waits for
// all of them and folds the results into a single view. A missing user is
// domain.ErrUserNotFound, never a partial view.
func (uc *UseCase) GetView(ctx context.Context, userID int) (*View, error) {
	var (
		user    *domain.User
		hikes   []domain.Activity
		unlocks []domain.AchievementUnlock
	)

	err := usecase.FanOut(ctx,
		func(ctx context.Context) error {
			var err error
			user, err = uc.users.GetByID(ctx, userID)
			return err
		},
		func(ctx context.Context) error {
			var err error
			hikes, err = uc.activities.List(ctx, repository.ActivityFilter{
				UserID: userID,
				Type:   domain.CategoryHike,
			})
			return err
		},
		func(ctx context.Context) error {
			var err error
			unlocks, err = uc.achievements.ListUnlocks(ctx, userID)
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	view := &View{
		ID:      user.ID,
		Email:   user.Email,
		XP:      user.XP,
		Level:   user.Level,
		Profile: user.DefaultedProfile(),
		Stats:   foldStats(hikes),
		Badges:  foldBadges(unlocks),
		Devices: []Device{},
	}
	return view, nil
}

// ListUnlockedBadges returns the flat achievements projection.
func (uc *UseCase) ListUnlockedBadges(ctx context.Context, userID int) ([]UnlockedBadge, error) {
	unlocks, err := uc.achievements.ListUnlocks(ctx, userID)
	if err != nil {
		return nil, err
	}

	badges := make([]UnlockedBadge, 0, len(unlocks))
	for _, u := range unlocks {
		badges = append(badges, UnlockedBadge{
			ID:          u.Achievement.ID,
			Name:        u.Achievement.Name,
			Description: u.Achievement.Description,
			XPValue:     u.Achievement.XPValue,
			UnlockedAt:  u.UnlockedAt,
		})
	}
	return badges, nil
}

// foldStats derives the stats block. A malformed distance value contributes
// 0 instead of failing the whole aggregation.
func foldStats(hikes []domain.Activity) Stats {
	stats := Stats{TotalHikes: len(hikes)}
	for _, hike := range hikes {
		stats.TotalDistance += hike.Data.Float("distance")
	}
	return stats
}

func foldBadges(unlocks []domain.AchievementUnlock) []Badge {
	badges := make([]Badge, 0, len(unlocks))
	for _, u := range unlocks {
		badges = append(badges, Badge{
			ID:          u.Achievement.ID,
			Name:        u.Achievement.Name,
			Description: u.Achievement.Description,
			Unlocked:    true,
			UnlockedAt:  u.UnlockedAt,
		})
	}
	return badges
}
