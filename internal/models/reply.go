// Package models contains data structures for the application's domain models.
package models

import "time"

// Reply represents a reply attached to exactly one post. Replies are not
// themselves repliable; threads are two levels deep.
type Reply struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Content  string `gorm:"type:text;not null" json:"content"`
	ImageURL string `json:"image_url"`
	PostID   uint   `gorm:"not null;index" json:"post_id"`
	Post     *Post  `gorm:"foreignKey:PostID" json:"post,omitempty"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	User     User   `gorm:"foreignKey:UserID" json:"user"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Reply) TableName() string {
	return "replies"
}
