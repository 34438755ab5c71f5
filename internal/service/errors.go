package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")

	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")

	ErrUnauthorized        = errors.New("could not validate credentials")
	ErrTokenInvalid        = errors.New("token is invalid")
	ErrTokenExpired        = errors.New("token has expired")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrPostNotFound      = errors.New("post not found")
	ErrCommentNotFound   = errors.New("comment not found")
	ErrUserHasDependents = errors.New("user still owns posts or comments")

	ErrForbidden = errors.New("not authorized")
)

// Ownership failures. Each one matches ErrForbidden with errors.Is.
var (
	ErrForbiddenPostUpdate    = fmt.Errorf("%w to update this post", ErrForbidden)
	ErrForbiddenPostDelete    = fmt.Errorf("%w to delete this post", ErrForbidden)
	ErrForbiddenCommentUpdate = fmt.Errorf("%w to update this comment", ErrForbidden)
	ErrForbiddenCommentDelete = fmt.Errorf("%w to delete this comment", ErrForbidden)
)
