package service

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// ResolveUser loads the user a verified token was issued for.
	ResolveUser(ctx context.Context, token models.Token) (models.User, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, caller models.User) error
}

// PostService exposes post operations. Mutations take the authenticated
// caller; the owner of a post is never read from the request payload.
type PostService interface {
	CreatePost(ctx context.Context, owner models.User, post models.PostCreate) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.PostWithOwner, error)
	GetPost(ctx context.Context, postID int64) (models.PostWithComments, error)
	UpdatePost(ctx context.Context, caller models.User, postID int64, update models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, caller models.User, postID int64) error
}

type CommentService interface {
	CreateComment(ctx context.Context, owner models.User, postID int64, comment models.CommentCreate) (models.Comment, error)
	ListComments(ctx context.Context, postID int64) ([]models.CommentWithOwner, error)
	GetComment(ctx context.Context, commentID int64) (models.CommentWithOwner, error)
	UpdateComment(ctx context.Context, caller models.User, commentID int64, update models.CommentUpdate) (models.Comment, error)
	DeleteComment(ctx context.Context, caller models.User, commentID int64) error
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type PostServiceWrapper interface {
	Wrap(PostService) PostService
}

type CommentServiceWrapper interface {
	Wrap(CommentService) CommentService
}
