package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailforge/backend/domain"
	"github.com/trailforge/backend/repository"
)

type mockUserRepo struct {
	user *domain.User
	err  error
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

type mockActivityRepo struct {
	activities []domain.Activity
	gotFilter  repository.ActivityFilter
	err        error
}

func (m *mockActivityRepo) GetByID(ctx context.Context, id int) (*domain.Activity, error) {
	return nil, domain.ErrActivityNotFound
}

func (m *mockActivityRepo) List(ctx context.Context, filter repository.ActivityFilter) ([]domain.Activity, error) {
	m.gotFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	return m.activities, nil
}

func (m *mockActivityRepo) Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	return activity, nil
}

type mockAchievementRepo struct {
	unlocks []domain.AchievementUnlock
	err     error
}

func (m *mockAchievementRepo) ListUnlocks(ctx context.Context, userID int) ([]domain.AchievementUnlock, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.unlocks, nil
}

func newTestUseCase(users *mockUserRepo, acts *mockActivityRepo, achs *mockAchievementRepo) *UseCase {
	return New(users, acts, achs, nil)
}

func TestGetViewEmptyAggregation(t *testing.T) {
	users := &mockUserRepo{user: &domain.User{ID: 1, Email: "a@b.c", XP: 0, Level: 1}}
	uc := newTestUseCase(users, &mockActivityRepo{}, &mockAchievementRepo{})

	view, err := uc.GetView(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 0, view.Stats.TotalHikes)
	assert.Equal(t, 0.0, view.Stats.TotalDistance)
	assert.Empty(t, view.Badges)
	assert.NotNil(t, view.Badges)
	assert.NotNil(t, view.Devices)
}

func TestGetViewDistanceCoercion(t *testing.T) {
	activities := []domain.Activity{
		{ID: 1, Type: domain.CategoryHike, Data: domain.Attributes{"distance": "5.2"}},
		{ID: 2, Type: domain.CategoryHike, Data: domain.Attributes{"distance": nil}},
		{ID: 3, Type: domain.CategoryHike, Data: domain.Attributes{"distance": "3"}},
	}
	users := &mockUserRepo{user: &domain.User{ID: 1}}
	acts := &mockActivityRepo{activities: activities}
	uc := newTestUseCase(users, acts, &mockAchievementRepo{})

	view, err := uc.GetView(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 3, view.Stats.TotalHikes)
	assert.InDelta(t, 8.2, view.Stats.TotalDistance, 1e-9)
}

func TestGetViewFiltersHikesOnly(t *testing.T) {
	users := &mockUserRepo{user: &domain.User{ID: 9}}
	acts := &mockActivityRepo{}
	uc := newTestUseCase(users, acts, &mockAchievementRepo{})

	_, err := uc.GetView(context.Background(), 9)
	require.NoError(t, err)

	assert.Equal(t, 9, acts.gotFilter.UserID)
	assert.Equal(t, domain.CategoryHike, acts.gotFilter.Type)
}

func TestGetViewUserNotFound(t *testing.T) {
	users := &mockUserRepo{err: domain.ErrUserNotFound}
	uc := newTestUseCase(users, &mockActivityRepo{}, &mockAchievementRepo{})

	view, err := uc.GetView(context.Background(), 999999)
	assert.Nil(t, view, "a missing user must never yield a partial view")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetViewDefaultsMissingProfile(t *testing.T) {
	users := &mockUserRepo{user: &domain.User{ID: 1, Email: "a@b.c", XP: 120, Level: 2}}
	uc := newTestUseCase(users, &mockActivityRepo{}, &mockAchievementRepo{})

	view, err := uc.GetView(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "", view.Profile.FirstName)
	assert.Equal(t, "", view.Profile.LastName)
	assert.Equal(t, "", view.Profile.Bio)
	assert.Equal(t, "", view.Profile.Location)
	assert.Equal(t, domain.PlaceholderAvatar, view.Profile.AvatarURL)
}

func TestGetViewPlaceholderStatsStayZero(t *testing.T) {
	activities := []domain.Activity{
		{ID: 1, Type: domain.CategoryHike, Data: domain.Attributes{"distance": 10.0, "elevation": 500.0}},
	}
	users := &mockUserRepo{user: &domain.User{ID: 1}}
	uc := newTestUseCase(users, &mockActivityRepo{activities: activities}, &mockAchievementRepo{})

	view, err := uc.GetView(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 0.0, view.Stats.TotalElevation)
	assert.Equal(t, 0.0, view.Stats.LongestHike)
	assert.Equal(t, 0.0, view.Stats.HighestElevation)
}

func TestGetViewBadgeProjection(t *testing.T) {
	unlockedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	achs := &mockAchievementRepo{unlocks: []domain.AchievementUnlock{
		{
			Achievement: domain.Achievement{ID: 3, Name: "Peak Bagger", Description: "Summit 5 peaks", XPValue: 50},
			UnlockedAt:  unlockedAt,
		},
	}}
	users := &mockUserRepo{user: &domain.User{ID: 1}}
	uc := newTestUseCase(users, &mockActivityRepo{}, achs)

	view, err := uc.GetView(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, view.Badges, 1)
	badge := view.Badges[0]
	assert.Equal(t, 3, badge.ID)
	assert.Equal(t, "Peak Bagger", badge.Name)
	assert.True(t, badge.Unlocked)
	assert.Equal(t, unlockedAt, badge.UnlockedAt)
}

func TestGetViewPropagatesFetchError(t *testing.T) {
	boom := errors.New("connection reset")
	users := &mockUserRepo{user: &domain.User{ID: 1}}
	acts := &mockActivityRepo{err: boom}
	uc := newTestUseCase(users, acts, &mockAchievementRepo{})

	_, err := uc.GetView(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}

func TestListUnlockedBadges(t *testing.T) {
	unlockedAt := time.Date(2025, 3, 2, 8, 30, 0, 0, time.UTC)
	achs := &mockAchievementRepo{unlocks: []domain.AchievementUnlock{
		{
			Achievement: domain.Achievement{ID: 1, Name: "First Steps", Description: "Log a hike", XPValue: 10},
			UnlockedAt:  unlockedAt,
		},
	}}
	uc := newTestUseCase(&mockUserRepo{}, &mockActivityRepo{}, achs)

	badges, err := uc.ListUnlockedBadges(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, badges, 1)
	assert.Equal(t, 10, badges[0].XPValue)
	assert.Equal(t, unlockedAt, badges[0].UnlockedAt)
}
