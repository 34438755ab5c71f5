package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

// AuthValidationService rejects malformed registration payloads before they
// reach the wrapped AuthService. Login is passed through: a malformed login
// is reported as invalid credentials.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.RegisterUser(ctx, credentials)
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return v.inner.Login(ctx, credentials)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) ResolveUser(ctx context.Context, token models.Token) (models.User, error) {
	return v.inner.ResolveUser(ctx, token)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService(validator validators.Validator) PostServiceWrapper {
	return &PostValidationService{validator: validator}
}

func (v *PostValidationService) CreatePost(ctx context.Context, owner models.User, post models.PostCreate) (models.Post, error) {
	if err := v.validator.Validate(ctx, post); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.CreatePost(ctx, owner, post)
}

func (v *PostValidationService) ListPosts(ctx context.Context) ([]models.PostWithOwner, error) {
	return v.inner.ListPosts(ctx)
}

func (v *PostValidationService) GetPost(ctx context.Context, postID int64) (models.PostWithComments, error) {
	return v.inner.GetPost(ctx, postID)
}

func (v *PostValidationService) UpdatePost(ctx context.Context, caller models.User, postID int64, update models.PostUpdate) (models.Post, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.UpdatePost(ctx, caller, postID, update)
}

func (v *PostValidationService) DeletePost(ctx context.Context, caller models.User, postID int64) error {
	return v.inner.DeletePost(ctx, caller, postID)
}

func (v *PostValidationService) Wrap(wrapped PostService) PostService {
	v.inner = wrapped
	return v
}

type CommentValidationService struct {
	inner     CommentService
	validator validators.Validator
}

func NewCommentValidationService(validator validators.Validator) CommentServiceWrapper {
	return &CommentValidationService{validator: validator}
}

func (v *CommentValidationService) CreateComment(ctx context.Context, owner models.User, postID int64, comment models.CommentCreate) (models.Comment, error) {
	if err := v.validator.Validate(ctx, comment); err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.CreateComment(ctx, owner, postID, comment)
}

func (v *CommentValidationService) ListComments(ctx context.Context, postID int64) ([]models.CommentWithOwner, error) {
	return v.inner.ListComments(ctx, postID)
}

func (v *CommentValidationService) GetComment(ctx context.Context, commentID int64) (models.CommentWithOwner, error) {
	return v.inner.GetComment(ctx, commentID)
}

func (v *CommentValidationService) UpdateComment(ctx context.Context, caller models.User, commentID int64, update models.CommentUpdate) (models.Comment, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.UpdateComment(ctx, caller, commentID, update)
}

func (v *CommentValidationService) DeleteComment(ctx context.Context, caller models.User, commentID int64) error {
	return v.inner.DeleteComment(ctx, caller, commentID)
}

func (v *CommentValidationService) Wrap(wrapped CommentService) CommentService {
	v.inner = wrapped
	return v
}
