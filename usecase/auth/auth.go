package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/trailforge/backend/domain"
	"github.com/trailforge/backend/pkg/token"
	"github.com/trailforge/backend/repository"
)

// Session is what a successful login returns to the client.
type Session struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

type UserSummary struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type UseCase struct {
	users  repository.UserRepository
	tokens *token.Manager
	logger *zap.Logger
}

func New(users repository.UserRepository, tokens *token.Manager, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Login verifies the credentials and issues a signed token. An unknown
// email and a wrong password are indistinguishable to the caller.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	signed, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("user logged in", zap.Int("user_id", user.ID))
	return &Session{
		Token: signed,
		User: UserSummary{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.DisplayName(),
		},
	}, nil
}

// HashPassword produces a bcrypt hash for storage. Exposed for seeding and
// future registration flows.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
