package domain

import "time"

// Trail describes a catalog trail users can browse and review.
type Trail struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Difficulty    string   `json:"difficulty"`
	Distance      float64  `json:"distance"`
	ElevationGain float64  `json:"elevationGain"`
	Features      []string `json:"features,omitempty"`
	Reviews       []Review `json:"reviews,omitempty"`
}

// Review is a user rating left on a trail.
type Review struct {
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
