package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trailforge/backend/domain"
	"github.com/trailforge/backend/repository"
)

type achievementRepository struct {
	pool *pgxpool.Pool
}

// NewAchievementRepository instantiates a Postgres-backed achievement repository.
func NewAchievementRepository(pool *pgxpool.Pool) repository.AchievementRepository {
	return &achievementRepository{pool: pool}
}

func (r *achievementRepository) ListUnlocks(ctx context.Context, userID int) ([]domain.AchievementUnlock, error) {
	const query = `
		SELECT a.id, a.name, a.description, a.xp_value, ua.unlocked_at
		FROM user_achievements ua
		JOIN achievements a ON a.id = ua.achievement_id
		WHERE ua.user_id = $1
		ORDER BY ua.unlocked_at ASC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	unlocks := make([]domain.AchievementUnlock, 0)
	for rows.Next() {
		var u domain.AchievementUnlock
		if err := rows.Scan(
			&u.Achievement.ID, &u.Achievement.Name, &u.Achievement.Description,
			&u.Achievement.XPValue, &u.UnlockedAt,
		); err != nil {
			return nil, err
		}
		unlocks = append(unlocks, u)
	}
	return unlocks, rows.Err()
}
