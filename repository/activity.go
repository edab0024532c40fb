package repository

import (
	"context"

	"github.com/trailforge/backend/domain"
)

// ActivityFilter narrows an activity listing. Type is optional.
type ActivityFilter struct {
	UserID int
	Type   string
}

type ActivityRepository interface {
	GetByID(ctx context.Context, id int) (*domain.Activity, error)
	// List returns matching activities ordered most-recent-first.
	List(ctx context.Context, filter ActivityFilter) ([]domain.Activity, error)
	Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
}
