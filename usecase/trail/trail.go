package trail

import (
	"context"

	"go.uber.org/zap"

	"github.com/trailforge/backend/domain"
	"github.com/trailforge/backend/repository"
)

// recentReviewCount bounds the reviews embedded in a trail detail response.
const recentReviewCount = 5

type UseCase struct {
	trails repository.TrailRepository
	logger *zap.Logger
}

func New(trails repository.TrailRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		trails: trails,
		logger: logger,
	}
}

// List returns the trail catalog ordered by name.
func (uc *UseCase) List(ctx context.Context) ([]domain.Trail, error) {
	return uc.trails.List(ctx)
}

// Get loads one trail with its features and most recent reviews.
func (uc *UseCase) Get(ctx context.Context, id int) (*domain.Trail, error) {
	return uc.trails.GetByID(ctx, id, recentReviewCount)
}
