package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/models"
)

type postService struct {
	postRepository store.PostRepository

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		logger:         logger,
	}
}

func (p *postService) CreatePost(ctx context.Context, owner models.User, post models.PostCreate) (models.Post, error) {
	log := logger.FromContext(ctx)

	created, err := p.postRepository.CreatePost(ctx, models.Post{
		Title:   post.Title,
		Content: post.Content,
		OwnerID: owner.UserID,
	})
	if err != nil {
		if errors.Is(err, store.ErrReferenceNotFound) {
			return models.Post{}, ErrUnauthorized
		}
		log.Err(err).Int64("owner_id", owner.UserID).Msg("post creation failed")
		return models.Post{}, fmt.Errorf("post creation failed: %w", err)
	}

	return created, nil
}

func (p *postService) ListPosts(ctx context.Context) ([]models.PostWithOwner, error) {
	return p.postRepository.ListPosts(ctx)
}

func (p *postService) GetPost(ctx context.Context, postID int64) (models.PostWithComments, error) {
	post, err := p.postRepository.GetPostWithComments(ctx, postID)
	if err != nil {
		return models.PostWithComments{}, mapPostError(err)
	}
	return post, nil
}

// UpdatePost applies the present fields of update to a post owned by caller.
// An update without fields returns the stored post unchanged.
func (p *postService) UpdatePost(ctx context.Context, caller models.User, postID int64, update models.PostUpdate) (models.Post, error) {
	log := logger.FromContext(ctx)

	current, err := p.postRepository.GetPost(ctx, postID)
	if err != nil {
		return models.Post{}, mapPostError(err)
	}

	if current.OwnerID != caller.UserID {
		log.Info().Int64("post_id", postID).Int64("caller_id", caller.UserID).Msg("post update by non-owner rejected")
		return models.Post{}, ErrForbiddenPostUpdate
	}

	if update.IsEmpty() {
		return current.Post, nil
	}

	post := current.Post
	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Content != nil {
		post.Content = *update.Content
	}
	post.OwnerID = caller.UserID

	updated, err := p.postRepository.UpdatePost(ctx, post)
	if err != nil {
		return models.Post{}, mapPostError(err)
	}

	return updated, nil
}

// DeletePost deletes a post owned by caller together with its comments.
func (p *postService) DeletePost(ctx context.Context, caller models.User, postID int64) error {
	log := logger.FromContext(ctx)

	current, err := p.postRepository.GetPost(ctx, postID)
	if err != nil {
		return mapPostError(err)
	}

	if current.OwnerID != caller.UserID {
		log.Info().Int64("post_id", postID).Int64("caller_id", caller.UserID).Msg("post deletion by non-owner rejected")
		return ErrForbiddenPostDelete
	}

	if err = p.postRepository.DeletePost(ctx, postID, caller.UserID); err != nil {
		return mapPostError(err)
	}

	return nil
}

func mapPostError(err error) error {
	if errors.Is(err, store.ErrPostNotFound) {
		return ErrPostNotFound
	}
	return fmt.Errorf("post storage failure: %w", err)
}
