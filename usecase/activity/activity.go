package activity

import (
	"context"

	"go.uber.org/zap"

	"github.com/trailforge/backend/domain"
	"github.com/trailforge/backend/repository"
)

type UseCase struct {
	activities repository.ActivityRepository
	logger     *zap.Logger
}

func New(activities repository.ActivityRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		activities: activities,
		logger:     logger,
	}
}

// Log records a new activity. The category tag is case-normalized; the
// attribute bag is stored as-is. Activities are immutable once logged.
func (uc *UseCase) Log(ctx context.Context, userID int, activityType string, data domain.Attributes) (*domain.Activity, error) {
	if data == nil {
		data = domain.Attributes{}
	}
	created, err := uc.activities.Create(ctx, &domain.Activity{
		UserID: userID,
		Type:   domain.NormalizeCategory(activityType),
		Data:   data,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("activity logged",
		zap.Int("activity_id", created.ID),
		zap.Int("user_id", created.UserID),
		zap.String("type", created.Type),
	)
	return created, nil
}

// Get loads one activity by id.
func (uc *UseCase) Get(ctx context.Context, id int) (*domain.Activity, error) {
	return uc.activities.GetByID(ctx, id)
}
