// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the blog API.
//
// [ServerAdapter] hides the HTTP details: request encoding, the bearer
// token header and the translation of error responses. Error values defined
// in errors.go are mapped from HTTP status codes by mapHTTPError so that
// callers can use [errors.Is] (e.g. [ErrForbidden] for 403, [ErrConflict]
// for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

// ServerAdapter talks to a running blog API server. Register and Login do not
// need a token; every other mutating call and Me require one to be set,
// either by a successful Login or by SetToken.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Register creates an account and returns its public projection.
	// It does not log the user in.
	Register(ctx context.Context, credentials models.Credentials) (models.UserPublic, error)

	// Login exchanges credentials for an access token and stores it via
	// SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.AccessTokenResponse, error)

	Me(ctx context.Context) (models.UserPublic, error)
	DeleteMe(ctx context.Context) error
	ListUsers(ctx context.Context) ([]models.UserPublic, error)

	CreatePost(ctx context.Context, post models.PostCreate) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.PostWithOwner, error)
	GetPost(ctx context.Context, postID int64) (models.PostWithComments, error)
	UpdatePost(ctx context.Context, postID int64, update models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, postID int64) error

	CreateComment(ctx context.Context, postID int64, comment models.CommentCreate) (models.Comment, error)
	ListComments(ctx context.Context, postID int64) ([]models.CommentWithOwner, error)
	GetComment(ctx context.Context, commentID int64) (models.CommentWithOwner, error)
	UpdateComment(ctx context.Context, commentID int64, update models.CommentUpdate) (models.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
}
