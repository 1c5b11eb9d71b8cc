package repository

import (
	"context"
	"errors"

	"github.com/soremkrs/Twex/internal/models"

	"gorm.io/gorm"
)

// ReplyRepository defines the interface for reply data operations
type ReplyRepository interface {
	Create(ctx context.Context, reply *models.Reply) error
	GetByID(ctx context.Context, id uint) (*models.Reply, error)
	ListForPost(ctx context.Context, postID uint) ([]*models.Reply, error)
	ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.Reply, error)
	Delete(ctx context.Context, id uint) error
}

type replyRepository struct {
	db *gorm.DB
}

// NewReplyRepository creates a new reply repository
func NewReplyRepository(db *gorm.DB) ReplyRepository {
	return &replyRepository{db: db}
}

func (r *replyRepository) Create(ctx context.Context, reply *models.Reply) error {
	if err := r.db.WithContext(ctx).Create(reply).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *replyRepository) GetByID(ctx context.Context, id uint) (*models.Reply, error) {
	var reply models.Reply
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&reply, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Reply", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &reply, nil
}

// ListForPost returns the full thread oldest-first. Threads are short
// enough that we do not paginate them.
func (r *replyRepository) ListForPost(ctx context.Context, postID uint) ([]*models.Reply, error) {
	var replies []*models.Reply
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("id ASC").
		Find(&replies).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return replies, nil
}

// ListByAuthor returns a user's replies newest-first, each carrying the
// parent post and its author for rendering context.
func (r *replyRepository) ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.Reply, error) {
	var replies []*models.Reply
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Post.User").
		Where("user_id = ?", authorID).
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&replies).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return replies, nil
}

func (r *replyRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Reply{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
