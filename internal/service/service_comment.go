package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/models"
)

type commentService struct {
	commentRepository store.CommentRepository
	postRepository    store.PostRepository

	logger *logger.Logger
}

func NewCommentService(commentRepository store.CommentRepository, postRepository store.PostRepository, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		postRepository:    postRepository,
		logger:            logger,
	}
}

// CreateComment attaches a comment by owner to an existing post.
func (c *commentService) CreateComment(ctx context.Context, owner models.User, postID int64, comment models.CommentCreate) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if _, err := c.postRepository.GetPost(ctx, postID); err != nil {
		return models.Comment{}, mapPostError(err)
	}

	created, err := c.commentRepository.CreateComment(ctx, models.Comment{
		Body:    comment.Body,
		OwnerID: owner.UserID,
		PostID:  postID,
	})
	if err != nil {
		// the post was deleted between the lookup and the insert
		if errors.Is(err, store.ErrReferenceNotFound) {
			return models.Comment{}, ErrPostNotFound
		}
		log.Err(err).Int64("post_id", postID).Msg("comment creation failed")
		return models.Comment{}, fmt.Errorf("comment creation failed: %w", err)
	}

	return created, nil
}

func (c *commentService) ListComments(ctx context.Context, postID int64) ([]models.CommentWithOwner, error) {
	if _, err := c.postRepository.GetPost(ctx, postID); err != nil {
		return nil, mapPostError(err)
	}

	return c.commentRepository.ListCommentsByPost(ctx, postID)
}

func (c *commentService) GetComment(ctx context.Context, commentID int64) (models.CommentWithOwner, error) {
	comment, err := c.commentRepository.GetComment(ctx, commentID)
	if err != nil {
		return models.CommentWithOwner{}, mapCommentError(err)
	}
	return comment, nil
}

func (c *commentService) UpdateComment(ctx context.Context, caller models.User, commentID int64, update models.CommentUpdate) (models.Comment, error) {
	log := logger.FromContext(ctx)

	current, err := c.commentRepository.GetComment(ctx, commentID)
	if err != nil {
		return models.Comment{}, mapCommentError(err)
	}

	if current.OwnerID != caller.UserID {
		log.Info().Int64("comment_id", commentID).Int64("caller_id", caller.UserID).Msg("comment update by non-owner rejected")
		return models.Comment{}, ErrForbiddenCommentUpdate
	}

	if update.IsEmpty() {
		return current.Comment, nil
	}

	comment := current.Comment
	comment.Body = *update.Body
	comment.OwnerID = caller.UserID

	updated, err := c.commentRepository.UpdateComment(ctx, comment)
	if err != nil {
		return models.Comment{}, mapCommentError(err)
	}

	return updated, nil
}

func (c *commentService) DeleteComment(ctx context.Context, caller models.User, commentID int64) error {
	log := logger.FromContext(ctx)

	current, err := c.commentRepository.GetComment(ctx, commentID)
	if err != nil {
		return mapCommentError(err)
	}

	if current.OwnerID != caller.UserID {
		log.Info().Int64("comment_id", commentID).Int64("caller_id", caller.UserID).Msg("comment deletion by non-owner rejected")
		return ErrForbiddenCommentDelete
	}

	if err = c.commentRepository.DeleteComment(ctx, commentID, caller.UserID); err != nil {
		return mapCommentError(err)
	}

	return nil
}

func mapCommentError(err error) error {
	if errors.Is(err, store.ErrCommentNotFound) {
		return ErrCommentNotFound
	}
	return fmt.Errorf("comment storage failure: %w", err)
}
