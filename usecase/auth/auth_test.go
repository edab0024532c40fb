package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailforge/backend/domain"
	"github.com/trailforge/backend/pkg/token"
)

type mockUserRepo struct {
	byEmail map[string]*domain.User
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if user, ok := m.byEmail[email]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

func newTestUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return &domain.User{
		ID:           42,
		Email:        "hiker@trailforge.dev",
		PasswordHash: hash,
		Profile:      &domain.Profile{FirstName: "Alex", LastName: "Rivera"},
	}
}

func TestLoginSuccess(t *testing.T) {
	user := newTestUser(t, "correct horse")
	repo := &mockUserRepo{byEmail: map[string]*domain.User{user.Email: user}}
	tokens := token.NewManager("secret", 7*24*time.Hour)
	uc := New(repo, tokens, nil)

	session, err := uc.Login(context.Background(), user.Email, "correct horse")
	require.NoError(t, err)

	assert.Equal(t, 42, session.User.ID)
	assert.Equal(t, user.Email, session.User.Email)
	assert.Equal(t, "Alex Rivera", session.User.Name)

	// The issued token must resolve back to the same identity.
	userID, err := tokens.Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestLoginWrongPassword(t *testing.T) {
	user := newTestUser(t, "correct horse")
	repo := &mockUserRepo{byEmail: map[string]*domain.User{user.Email: user}}
	uc := New(repo, token.NewManager("secret", time.Hour), nil)

	_, err := uc.Login(context.Background(), user.Email, "battery staple")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	uc := New(&mockUserRepo{}, token.NewManager("secret", time.Hour), nil)

	_, err := uc.Login(context.Background(), "nobody@trailforge.dev", "whatever")
	// Indistinguishable from a wrong password.
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
