package repository

import (
	"context"
	"errors"
	"time"

	"github.com/soremkrs/Twex/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotificationRepository tracks per-user notification watermarks and answers
// whether anything happened since.
type NotificationRepository interface {
	LastSeen(ctx context.Context, userID uint) (*time.Time, error)
	MarkSeen(ctx context.Context, userID uint, at time.Time) error
	HasNewSince(ctx context.Context, userID uint, since time.Time) (bool, error)
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// LastSeen returns nil when the user has never checked notifications.
func (r *notificationRepository) LastSeen(ctx context.Context, userID uint) (*time.Time, error) {
	var check models.NotificationCheck
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&check).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &check.LastSeenAt, nil
}

func (r *notificationRepository) MarkSeen(ctx context.Context, userID uint, at time.Time) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"last_seen_at": at}),
		}).
		Create(&models.NotificationCheck{UserID: userID, LastSeenAt: at}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// HasNewSince reports whether anyone the user follows posted after the
// watermark. EXISTS short-circuits, so this stays cheap on large feeds.
func (r *notificationRepository) HasNewSince(ctx context.Context, userID uint, since time.Time) (bool, error) {
	var hasNew bool
	err := r.db.WithContext(ctx).
		Raw(`SELECT EXISTS(
			SELECT 1 FROM posts
			JOIN follows ON follows.following_id = posts.user_id
			WHERE follows.follower_id = ? AND posts.created_at > ?
		)`, userID, since).
		Scan(&hasNew).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return hasNew, nil
}
