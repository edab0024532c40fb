package post

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/trailforge/backend/domain"
	"github.com/trailforge/backend/repository"
	"github.com/trailforge/backend/usecase"
)

// FeedItem is one denormalized feed entry: the post merged with its
// author's public profile and image urls.
type FeedItem struct {
	ID           int             `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	ActivityType string          `json:"activityType"`
	Location     string          `json:"location"`
	Stats        json.RawMessage `json:"stats"`
	Likes        int             `json:"likes"`
	Comments     int             `json:"comments"`
	CreatedAt    time.Time       `json:"createdAt"`
	User         Author          `json:"user"`
	Images       []string        `json:"images"`
}

type Author struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type UseCase struct {
	posts  repository.PostRepository
	logger *zap.Logger
}

func New(posts repository.PostRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		posts:  posts,
		logger: logger,
	}
}

// Feed lists all adventure posts most-recent-first, then fans out the two
// independent relation reads (author profiles, post images) and folds
// everything into flat feed items.
func (uc *UseCase) Feed(ctx context.Context) ([]FeedItem, error) {
	posts, err := uc.posts.List(ctx)
	if err != nil {
		return nil, err
	}

	postIDs := make([]int, 0, len(posts))
	userIDs := make([]int, 0, len(posts))
	seen := make(map[int]struct{}, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
		if _, ok := seen[p.UserID]; !ok {
			seen[p.UserID] = struct{}{}
			userIDs = append(userIDs, p.UserID)
		}
	}

	var (
		authors map[int]domain.User
		images  []domain.PostImage
	)
	err = usecase.FanOut(ctx,
		func(ctx context.Context) error {
			var err error
			authors, err = uc.posts.GetAuthors(ctx, userIDs)
			return err
		},
		func(ctx context.Context) error {
			var err error
			images, err = uc.posts.ListImages(ctx, postIDs)
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	imagesByPost := make(map[int][]string, len(posts))
	for _, img := range images {
		imagesByPost[img.PostID] = append(imagesByPost[img.PostID], img.URL)
	}

	feed := make([]FeedItem, 0, len(posts))
	for _, p := range posts {
		author := authors[p.UserID]
		urls := imagesByPost[p.ID]
		if urls == nil {
			urls = []string{}
		}
		feed = append(feed, FeedItem{
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			ActivityType: p.ActivityType,
			Location:     p.Location,
			Stats:        p.Stats,
			Likes:        p.Likes,
			Comments:     p.Comments,
			CreatedAt:    p.CreatedAt,
			User: Author{
				ID:     author.ID,
				Name:   author.DisplayName(),
				Avatar: author.DefaultedProfile().AvatarURL,
			},
			Images: urls,
		})
	}
	return feed, nil
}
