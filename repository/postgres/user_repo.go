package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trailforge/backend/domain"
	"github.com/trailforge/backend/repository"
)

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository instantiates a Postgres-backed user repository.
func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{pool: pool}
}

const userSelect = `
	SELECT u.id, u.email, u.password_hash, u.xp, u.level, u.created_at, u.updated_at,
	       p.first_name, p.last_name, p.bio, p.avatar_url, p.location
	FROM users u
	LEFT JOIN profiles p ON p.user_id = u.id
`

func (r *userRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	return r.getOne(ctx, userSelect+` WHERE u.id = $1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, userSelect+` WHERE u.email = $1`, email)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var firstName, lastName, bio, avatarURL, location *string

	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.XP, &user.Level,
		&user.CreatedAt, &user.UpdatedAt,
		&firstName, &lastName, &bio, &avatarURL, &location,
	)
	if err != nil {
		return nil, err
	}

	// An all-NULL join means the user has no profile row at all.
	if firstName != nil || lastName != nil || bio != nil || avatarURL != nil || location != nil {
		user.Profile = &domain.Profile{
			FirstName: deref(firstName),
			LastName:  deref(lastName),
			Bio:       deref(bio),
			AvatarURL: deref(avatarURL),
			Location:  deref(location),
		}
	}

	return &user, nil
}
