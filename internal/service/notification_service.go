package service

import (
	"context"
	"time"

	"github.com/soremkrs/Twex/internal/repository"
)

// NotificationService answers the "anything new?" poll and advances the
// per-user watermark.
type NotificationService interface {
	HasNew(ctx context.Context, userID uint) (bool, error)
	MarkSeen(ctx context.Context, userID uint) error
}

type notificationService struct {
	notifications repository.NotificationRepository
	now           func() time.Time
}

// NewNotificationService creates a new notification service
func NewNotificationService(notifications repository.NotificationRepository) NotificationService {
	return &notificationService{
		notifications: notifications,
		now:           time.Now,
	}
}

func (s *notificationService) HasNew(ctx context.Context, userID uint) (bool, error) {
	since, err := s.notifications.LastSeen(ctx, userID)
	if err != nil {
		return false, err
	}
	// A user who never checked sees everything; the epoch watermark makes
	// any followed author's post count as new.
	watermark := time.Unix(0, 0).UTC()
	if since != nil {
		watermark = *since
	}
	return s.notifications.HasNewSince(ctx, userID, watermark)
}

// MarkSeen stamps the watermark server-side so a tampered client clock
// cannot suppress or replay notifications.
func (s *notificationService) MarkSeen(ctx context.Context, userID uint) error {
	return s.notifications.MarkSeen(ctx, userID, s.now().UTC())
}
