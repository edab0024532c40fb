package repository

import (
	"context"

	"github.com/trailforge/backend/domain"
)

type TrailRepository interface {
	// List returns all trails ordered by name.
	List(ctx context.Context) ([]domain.Trail, error)
	// GetByID loads one trail with its features and the n most recent reviews.
	GetByID(ctx context.Context, id int, recentReviews int) (*domain.Trail, error)
}
