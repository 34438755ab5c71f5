package store

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the assigned id.
	// A taken email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns [ErrUserNotFound] when no user has the email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// DeleteUser removes a user that owns no posts and no comments.
	// Otherwise it returns [ErrUserHasDependents] and deletes nothing.
	DeleteUser(ctx context.Context, userID int64) error
}

// PostRepository persists posts. Reads attach the owner with a JOIN.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.PostWithOwner, error)
	GetPost(ctx context.Context, postID int64) (models.PostWithOwner, error)
	// GetPostWithComments loads the post with its owner, then all of its
	// comments in one additional query.
	GetPostWithComments(ctx context.Context, postID int64) (models.PostWithComments, error)
	// UpdatePost overwrites title and content of the post matching both
	// post.PostID and post.OwnerID.
	UpdatePost(ctx context.Context, post models.Post) (models.Post, error)
	// DeletePost deletes the post matching postID and ownerID together with
	// all of its comments in a single transaction.
	DeletePost(ctx context.Context, postID, ownerID int64) error
}

// CommentRepository persists comments. Reads attach the author with a JOIN.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	ListCommentsByPost(ctx context.Context, postID int64) ([]models.CommentWithOwner, error)
	GetComment(ctx context.Context, commentID int64) (models.CommentWithOwner, error)
	UpdateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	DeleteComment(ctx context.Context, commentID, ownerID int64) error
}
