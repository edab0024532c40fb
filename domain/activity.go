package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// CategoryHike is the activity type the profile aggregation folds over.
const CategoryHike = "HIKE"

// Activity represents a single logged activity. Activities are created once
// and never updated in this API.
type Activity struct {
	ID        int        `json:"id"`
	UserID    int        `json:"userId"`
	Type      string     `json:"type"`
	Data      Attributes `json:"data"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NormalizeCategory upper-cases an activity type tag.
func NormalizeCategory(t string) string {
	return strings.ToUpper(strings.TrimSpace(t))
}

// Attributes is the open-ended key/value payload attached to an activity
// (distance, duration, elevation, whatever the client sends).
type Attributes map[string]interface{}

// Float extracts a numeric attribute with safe coercion. JSON numbers,
// numeric strings and json.Number all resolve to their value; anything
// missing or non-numeric resolves to 0.
func (a Attributes) Float(key string) float64 {
	if a == nil {
		return 0
	}
	switch v := a[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return 0
}
