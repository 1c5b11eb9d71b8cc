package service

import (
	"context"

	"github.com/soremkrs/Twex/internal/models"
	"github.com/soremkrs/Twex/internal/repository"
)

// ReplyService defines the interface for reply business logic
type ReplyService interface {
	CreateReply(ctx context.Context, userID, postID uint, content, imageURL string) (*models.Reply, error)
	RepliesForPost(ctx context.Context, postID uint) ([]*models.Reply, error)
	RepliesByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.Reply, error)
	DeleteReply(ctx context.Context, userID, replyID uint) error
}

type replyService struct {
	replies repository.ReplyRepository
	posts   repository.PostRepository
}

// NewReplyService creates a new reply service
func NewReplyService(replies repository.ReplyRepository, posts repository.PostRepository) ReplyService {
	return &replyService{replies: replies, posts: posts}
}

func (s *replyService) CreateReply(ctx context.Context, userID, postID uint, content, imageURL string) (*models.Reply, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}

	exists, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Post", postID)
	}

	reply := &models.Reply{
		Content:  content,
		ImageURL: imageURL,
		PostID:   postID,
		UserID:   userID,
	}
	if err := s.replies.Create(ctx, reply); err != nil {
		return nil, err
	}
	return s.replies.GetByID(ctx, reply.ID)
}

func (s *replyService) RepliesForPost(ctx context.Context, postID uint) ([]*models.Reply, error) {
	exists, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Post", postID)
	}
	return s.replies.ListForPost(ctx, postID)
}

func (s *replyService) RepliesByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.Reply, error) {
	return s.replies.ListByAuthor(ctx, authorID, limit, offset)
}

func (s *replyService) DeleteReply(ctx context.Context, userID, replyID uint) error {
	reply, err := s.replies.GetByID(ctx, replyID)
	if err != nil {
		return err
	}
	if reply.UserID != userID {
		return models.NewForbiddenError("you can only delete your own replies")
	}
	return s.replies.Delete(ctx, replyID)
}
