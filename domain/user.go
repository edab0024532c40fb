package domain

import "time"

// User represents an authenticated identity in the platform.
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	XP           int       `json:"xp"`
	Level        int       `json:"level"`
	Profile      *Profile  `json:"profile,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile is the optional personal block attached to a user. A user without
// a profile row is still a valid user; callers default the fields instead.
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl"`
	Location  string `json:"location"`
}

// PlaceholderAvatar is served whenever a user has no profile or no avatar set.
const PlaceholderAvatar = "/placeholder.svg"

// DisplayName joins the profile name parts, tolerating a missing profile.
func (u *User) DisplayName() string {
	if u == nil || u.Profile == nil {
		return ""
	}
	if u.Profile.FirstName == "" {
		return u.Profile.LastName
	}
	if u.Profile.LastName == "" {
		return u.Profile.FirstName
	}
	return u.Profile.FirstName + " " + u.Profile.LastName
}

// DefaultedProfile returns the profile block to embed in responses. A
// missing profile yields empty strings and the placeholder avatar so the
// keys are never omitted.
func (u *User) DefaultedProfile() Profile {
	if u == nil || u.Profile == nil {
		return Profile{AvatarURL: PlaceholderAvatar}
	}
	return *u.Profile
}
