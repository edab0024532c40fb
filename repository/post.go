package repository

import (
	"context"

	"github.com/trailforge/backend/domain"
)

type PostRepository interface {
	// List returns all adventure posts ordered most-recent-first.
	List(ctx context.Context) ([]domain.AdventurePost, error)
	// ListImages returns the images attached to the given posts.
	ListImages(ctx context.Context, postIDs []int) ([]domain.PostImage, error)
	// GetAuthors loads the authoring users (with profiles) for the given ids.
	GetAuthors(ctx context.Context, userIDs []int) (map[int]domain.User, error)
}
