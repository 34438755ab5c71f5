package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail    = errors.New("invalid email address")
	ErrEmptyPassword   = errors.New("password is required")
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
	ErrEmptyTitle      = errors.New("title is required")
	ErrEmptyContent    = errors.New("content is required")
	ErrEmptyBody       = errors.New("body is required")
)
