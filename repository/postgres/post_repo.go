package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trailforge/backend/domain"
	"github.com/trailforge/backend/repository"
)

type postRepository struct {
	pool *pgxpool.Pool
}

// NewPostRepository instantiates a Postgres-backed adventure post repository.
func NewPostRepository(pool *pgxpool.Pool) repository.PostRepository {
	return &postRepository{pool: pool}
}

func (r *postRepository) List(ctx context.Context) ([]domain.AdventurePost, error) {
	const query = `
		SELECT id, user_id, title, description, activity_type, location, stats, likes, comments, created_at
		FROM adventure_posts
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]domain.AdventurePost, 0)
	for rows.Next() {
		var p domain.AdventurePost
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Title, &p.Description, &p.ActivityType,
			&p.Location, &p.Stats, &p.Likes, &p.Comments, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *postRepository) ListImages(ctx context.Context, postIDs []int) ([]domain.PostImage, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	const query = `
		SELECT post_id, url
		FROM post_images
		WHERE post_id = ANY($1)
		ORDER BY post_id, id
	`
	rows, err := r.pool.Query(ctx, query, postIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := make([]domain.PostImage, 0)
	for rows.Next() {
		var img domain.PostImage
		if err := rows.Scan(&img.PostID, &img.URL); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *postRepository) GetAuthors(ctx context.Context, userIDs []int) (map[int]domain.User, error) {
	if len(userIDs) == 0 {
		return map[int]domain.User{}, nil
	}
	query := userSelect + ` WHERE u.id = ANY($1)`
	rows, err := r.pool.Query(ctx, query, userIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	authors := make(map[int]domain.User, len(userIDs))
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		authors[user.ID] = *user
	}
	return authors, rows.Err()
}
