// Package models contains data structures for the application's domain models.
package models

import "time"

// Post represents a tweet in the Twex application.
// Posts are hard-deleted by their author; deletion cascades to replies,
// likes and bookmarks in the same transaction.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Content  string `gorm:"type:text;not null" json:"content"`
	ImageURL string `json:"image_url"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	User     User   `gorm:"foreignKey:UserID" json:"user"`
	// TotalLikes is not persisted; computed at query time
	TotalLikes int `gorm:"->" json:"total_likes"`
	// TotalReplies is not persisted; computed at query time
	TotalReplies int `gorm:"->" json:"total_replies"`
	// Liked indicates whether the requesting user liked this post (computed)
	Liked bool `gorm:"->" json:"liked_by_current_user"`
	// Bookmarked indicates whether the requesting user bookmarked this post (computed)
	Bookmarked bool      `gorm:"->" json:"bookmarked_by_current_user"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
