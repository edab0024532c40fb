package post

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailforge/backend/domain"
)

type mockPostRepo struct {
	posts      []domain.AdventurePost
	images     []domain.PostImage
	authors    map[int]domain.User
	listErr    error
	imagesErr  error
	gotPostIDs []int
	gotUserIDs []int
}

func (m *mockPostRepo) List(ctx context.Context) ([]domain.AdventurePost, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.posts, nil
}

func (m *mockPostRepo) ListImages(ctx context.Context, postIDs []int) ([]domain.PostImage, error) {
	m.gotPostIDs = postIDs
	if m.imagesErr != nil {
		return nil, m.imagesErr
	}
	return m.images, nil
}

func (m *mockPostRepo) GetAuthors(ctx context.Context, userIDs []int) (map[int]domain.User, error) {
	m.gotUserIDs = userIDs
	return m.authors, nil
}

func TestFeedFoldsAuthorsAndImages(t *testing.T) {
	createdAt := time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC)
	repo := &mockPostRepo{
		posts: []domain.AdventurePost{
			{ID: 1, UserID: 10, Title: "Sunrise summit", CreatedAt: createdAt},
			{ID: 2, UserID: 10, Title: "River crossing", CreatedAt: createdAt.Add(-time.Hour)},
		},
		images: []domain.PostImage{
			{PostID: 1, URL: "/img/a.jpg"},
			{PostID: 1, URL: "/img/b.jpg"},
		},
		authors: map[int]domain.User{
			10: {
				ID: 10,
				Profile: &domain.Profile{
					FirstName: "Alex",
					LastName:  "Rivera",
					AvatarURL: "/avatars/alex.png",
				},
			},
		},
	}

	uc := New(repo, nil)
	feed, err := uc.Feed(context.Background())
	require.NoError(t, err)
	require.Len(t, feed, 2)

	assert.Equal(t, "Alex Rivera", feed[0].User.Name)
	assert.Equal(t, "/avatars/alex.png", feed[0].User.Avatar)
	assert.Equal(t, []string{"/img/a.jpg", "/img/b.jpg"}, feed[0].Images)
	assert.Equal(t, []string{}, feed[1].Images)

	// One author fetch for two posts by the same user.
	assert.Equal(t, []int{10}, repo.gotUserIDs)
	assert.Equal(t, []int{1, 2}, repo.gotPostIDs)
}

func TestFeedEmpty(t *testing.T) {
	uc := New(&mockPostRepo{}, nil)

	feed, err := uc.Feed(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, feed)
	assert.Empty(t, feed)
}

func TestFeedPropagatesErrors(t *testing.T) {
	boom := errors.New("connection reset")

	uc := New(&mockPostRepo{listErr: boom}, nil)
	_, err := uc.Feed(context.Background())
	assert.ErrorIs(t, err, boom)

	uc = New(&mockPostRepo{
		posts:     []domain.AdventurePost{{ID: 1, UserID: 2}},
		imagesErr: boom,
	}, nil)
	_, err = uc.Feed(context.Background())
	assert.ErrorIs(t, err, boom)
}
