package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trailforge/backend/domain"
	"github.com/trailforge/backend/repository"
)

type trailRepository struct {
	pool *pgxpool.Pool
}

// NewTrailRepository instantiates a Postgres-backed trail repository.
func NewTrailRepository(pool *pgxpool.Pool) repository.TrailRepository {
	return &trailRepository{pool: pool}
}

func (r *trailRepository) List(ctx context.Context) ([]domain.Trail, error) {
	const query = `
		SELECT id, name, description, difficulty, distance, elevation_gain
		FROM trails
		ORDER BY name ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trails := make([]domain.Trail, 0)
	for rows.Next() {
		var t domain.Trail
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Difficulty, &t.Distance, &t.ElevationGain); err != nil {
			return nil, err
		}
		trails = append(trails, t)
	}
	return trails, rows.Err()
}

func (r *trailRepository) GetByID(ctx context.Context, id int, recentReviews int) (*domain.Trail, error) {
	const query = `
		SELECT id, name, description, difficulty, distance, elevation_gain
		FROM trails
		WHERE id = $1
	`
	var t domain.Trail
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&t.ID, &t.Name, &t.Description, &t.Difficulty, &t.Distance, &t.ElevationGain)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTrailNotFound
		}
		return nil, err
	}

	if t.Features, err = r.features(ctx, id); err != nil {
		return nil, err
	}
	if t.Reviews, err = r.reviews(ctx, id, recentReviews); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *trailRepository) features(ctx context.Context, trailID int) ([]string, error) {
	const query = `
		SELECT name
		FROM trail_features
		WHERE trail_id = $1
		ORDER BY name ASC
	`
	rows, err := r.pool.Query(ctx, query, trailID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	features := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		features = append(features, name)
	}
	return features, rows.Err()
}

func (r *trailRepository) reviews(ctx context.Context, trailID, limit int) ([]domain.Review, error) {
	const query = `
		SELECT rating, comment, created_at
		FROM trail_reviews
		WHERE trail_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, trailID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(&review.Rating, &review.Comment, &review.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}
