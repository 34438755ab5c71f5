package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-blog-api/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldEmail targets the login email of credentials.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of credentials.
	FieldPassword = "password"

	// FieldTitle targets the headline of a post.
	FieldTitle = "title"

	// FieldContent targets the body text of a post.
	FieldContent = "content"

	// FieldBody targets the text of a comment.
	FieldBody = "body"
)

// maxPasswordBytes is the bcrypt input limit.
const maxPasswordBytes = 72

// BlogValidator validates request payloads of the blog API: credentials,
// post and comment create/update bodies.
type BlogValidator struct {
	validate *validator.Validate
}

func NewBlogValidator() Validator {
	return &BlogValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *BlogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.PostCreate:
		return v.validatePostCreate(value, fields...)
	case *models.PostCreate:
		return v.validatePostCreate(*value, fields...)

	case models.PostUpdate:
		return v.validatePostUpdate(value, fields...)
	case *models.PostUpdate:
		return v.validatePostUpdate(*value, fields...)

	case models.CommentCreate:
		return v.validateCommentCreate(value, fields...)
	case *models.CommentCreate:
		return v.validateCommentCreate(*value, fields...)

	case models.CommentUpdate:
		return v.validateCommentUpdate(value, fields...)
	case *models.CommentUpdate:
		return v.validateCommentUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BlogValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !v.isValidEmail(c.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if err := validatePassword(c.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BlogValidator) validatePostCreate(p models.PostCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(p.Title) {
				return ErrEmptyTitle
			}
		case FieldContent:
			if isBlank(p.Content) {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePostUpdate accepts an empty update; present fields must not be blank.
func (v *BlogValidator) validatePostUpdate(p models.PostUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if p.Title != nil && isBlank(*p.Title) {
				return ErrEmptyTitle
			}
		case FieldContent:
			if p.Content != nil && isBlank(*p.Content) {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BlogValidator) validateCommentCreate(c models.CommentCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldBody:
			if isBlank(c.Body) {
				return ErrEmptyBody
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BlogValidator) validateCommentUpdate(c models.CommentUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldBody:
			if c.Body != nil && isBlank(*c.Body) {
				return ErrEmptyBody
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// isValidEmail accepts a bare address ("a@x.com") with a dotted domain.
// Display names ("A <a@x.com>") are rejected.
func (v *BlogValidator) isValidEmail(email string) bool {
	return v.validate.Var(strings.TrimSpace(email), "required,max=254,email") == nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}
