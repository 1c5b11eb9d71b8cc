// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account in the Twex application.
// Password is empty for accounts created through Google OAuth; those
// accounts cannot sign in with the local strategy.
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Username    string         `gorm:"size:100;unique;not null" json:"username"`
	Email       string         `gorm:"unique;not null" json:"email"`
	Password    string         `json:"-"`
	RealName    string         `json:"real_name"`
	AvatarURL   string         `json:"avatar_url"`
	DateOfBirth *time.Time     `json:"date_of_birth,omitempty"`
	Bio         string         `json:"bio"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Posts       []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// Profile is a user joined with derived activity counts, returned by the
// profile endpoint. Counts are recomputed per query, never cached.
type Profile struct {
	User
	TweetCount     int64 `json:"tweet_count"`
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
}
