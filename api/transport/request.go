package transport

import "github.com/trailforge/backend/domain"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ActivityCreateRequest carries a new activity log entry. UserID is left
// untyped because clients send it both as a number and as a string.
type ActivityCreateRequest struct {
	UserID interface{}       `json:"userId"`
	Type   string            `json:"type"`
	Data   domain.Attributes `json:"data"`
}
