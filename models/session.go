package models

import "time"

// Session correlates an opaque bearer token with an authenticated user.
// Sessions never expire; logout removes them.
type Session struct {
	Token     string    `gorm:"primaryKey" json:"token"`
	UserID    string    `gorm:"index;not null" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
