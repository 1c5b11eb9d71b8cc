package models

import "time"

// NotificationCheck stores, per user, the watermark of when the user last
// acknowledged the "new posts" badge. The check and the mark-seen update are
// deliberately not atomic with each other; the signal is advisory only.
type NotificationCheck struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	LastSeenAt time.Time `json:"last_seen_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for GORM.
func (NotificationCheck) TableName() string {
	return "notification_checks"
}
