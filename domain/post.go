package domain

import (
	"encoding/json"
	"time"
)

// AdventurePost is a social feed entry.
type AdventurePost struct {
	ID           int             `json:"id"`
	UserID       int             `json:"userId"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	ActivityType string          `json:"activityType"`
	Location     string          `json:"location"`
	Stats        json.RawMessage `json:"stats"`
	Likes        int             `json:"likes"`
	Comments     int             `json:"comments"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// PostImage is an image attached to an adventure post.
type PostImage struct {
	PostID int    `json:"postId"`
	URL    string `json:"url"`
}
