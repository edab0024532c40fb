package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultedProfileMissing(t *testing.T) {
	u := &User{ID: 1, Email: "a@b.c"}

	p := u.DefaultedProfile()
	assert.Equal(t, "", p.FirstName)
	assert.Equal(t, "", p.LastName)
	assert.Equal(t, "", p.Bio)
	assert.Equal(t, "", p.Location)
	assert.Equal(t, PlaceholderAvatar, p.AvatarURL)
}

func TestDefaultedProfilePresent(t *testing.T) {
	u := &User{
		ID: 1,
		Profile: &Profile{
			FirstName: "Alex",
			LastName:  "Rivera",
			AvatarURL: "/avatars/alex.png",
		},
	}

	p := u.DefaultedProfile()
	assert.Equal(t, "Alex", p.FirstName)
	assert.Equal(t, "/avatars/alex.png", p.AvatarURL)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "", (&User{}).DisplayName())
	assert.Equal(t, "Alex", (&User{Profile: &Profile{FirstName: "Alex"}}).DisplayName())
	assert.Equal(t, "Rivera", (&User{Profile: &Profile{LastName: "Rivera"}}).DisplayName())
	assert.Equal(t, "Alex Rivera", (&User{Profile: &Profile{FirstName: "Alex", LastName: "Rivera"}}).DisplayName())
}
