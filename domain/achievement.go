package domain

import "time"

// Achievement is a catalog entry users can unlock.
type Achievement struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	XPValue     int    `json:"xpValue"`
}

// AchievementUnlock joins a user to an unlocked catalog achievement.
type AchievementUnlock struct {
	Achievement Achievement `json:"achievement"`
	UnlockedAt  time.Time   `json:"unlockedAt"`
}
