package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trailforge/backend/domain"
	"github.com/trailforge/backend/repository"
)

type activityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository instantiates a Postgres-backed activity repository.
func NewActivityRepository(pool *pgxpool.Pool) repository.ActivityRepository {
	return &activityRepository{pool: pool}
}

func (r *activityRepository) GetByID(ctx context.Context, id int) (*domain.Activity, error) {
	const query = `
		SELECT id, user_id, type, data, created_at
		FROM activities
		WHERE id = $1
	`
	activity, err := scanActivity(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, err
	}
	return activity, nil
}

func (r *activityRepository) List(ctx context.Context, filter repository.ActivityFilter) ([]domain.Activity, error) {
	query := `
		SELECT id, user_id, type, data, created_at
		FROM activities
		WHERE user_id = $1
	`
	args := []interface{}{filter.UserID}
	if filter.Type != "" {
		query += ` AND type = $2`
		args = append(args, filter.Type)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]domain.Activity, 0)
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *activity)
	}
	return activities, rows.Err()
}

func (r *activityRepository) Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	const query = `
		INSERT INTO activities (user_id, type, data, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`
	payload, err := json.Marshal(activity.Data)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, "Invalid payload", err)
	}

	created := *activity
	if err := r.pool.QueryRow(ctx, query, activity.UserID, activity.Type, payload).
		Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, err
	}
	return &created, nil
}

func scanActivity(row pgx.Row) (*domain.Activity, error) {
	var activity domain.Activity
	var data []byte

	if err := row.Scan(&activity.ID, &activity.UserID, &activity.Type, &data, &activity.CreatedAt); err != nil {
		return nil, err
	}
	if len(data) > 0 {
		_ = json.Unmarshal(data, &activity.Data)
	}
	return &activity, nil
}
