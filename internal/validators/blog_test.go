// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog-api/models"
)

func ptr(s string) *string { return &s }

func TestNewBlogValidator(t *testing.T) {
	require.NotNil(t, NewBlogValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewBlogValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.User{}), ErrUnsupportedType)
}

func TestValidate_Credentials(t *testing.T) {
	v := NewBlogValidator()

	tests := []struct {
		name    string
		creds   models.Credentials
		wantErr error
	}{
		{name: "valid", creds: models.Credentials{Email: "a@x.com", Password: "pw1"}},
		{name: "surrounding spaces", creds: models.Credentials{Email: "  a@x.com ", Password: "pw1"}},
		{name: "max password", creds: models.Credentials{Email: "a@x.com", Password: strings.Repeat("p", 72)}},
		{name: "empty email", creds: models.Credentials{Password: "pw1"}, wantErr: ErrInvalidEmail},
		{name: "no at", creds: models.Credentials{Email: "ax.com", Password: "pw1"}, wantErr: ErrInvalidEmail},
		{name: "no domain dot", creds: models.Credentials{Email: "a@localhost", Password: "pw1"}, wantErr: ErrInvalidEmail},
		{name: "no local part", creds: models.Credentials{Email: "@x.com", Password: "pw1"}, wantErr: ErrInvalidEmail},
		{name: "space inside", creds: models.Credentials{Email: "a b@x.com", Password: "pw1"}, wantErr: ErrInvalidEmail},
		{name: "display name", creds: models.Credentials{Email: "A <a@x.com>", Password: "pw1"}, wantErr: ErrInvalidEmail},
		{name: "empty password", creds: models.Credentials{Email: "a@x.com"}, wantErr: ErrEmptyPassword},
		{name: "password too long", creds: models.Credentials{Email: "a@x.com", Password: strings.Repeat("p", 73)}, wantErr: ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.creds)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_CredentialsFieldScoping(t *testing.T) {
	v := NewBlogValidator()
	creds := &models.Credentials{Email: "not-an-email", Password: "pw"}

	assert.NoError(t, v.Validate(context.Background(), creds, FieldPassword))
	assert.ErrorIs(t, v.Validate(context.Background(), creds, FieldEmail), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(context.Background(), creds, "nickname"), ErrUnknownField)
}

func TestValidate_PostCreate(t *testing.T) {
	v := NewBlogValidator()

	assert.NoError(t, v.Validate(context.Background(), models.PostCreate{Title: "t", Content: "c"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.PostCreate{Content: "c"}), ErrEmptyTitle)
	assert.ErrorIs(t, v.Validate(context.Background(), &models.PostCreate{Title: "t", Content: "  "}), ErrEmptyContent)
}

func TestValidate_PostUpdate(t *testing.T) {
	v := NewBlogValidator()

	assert.NoError(t, v.Validate(context.Background(), models.PostUpdate{}))
	assert.NoError(t, v.Validate(context.Background(), models.PostUpdate{Title: ptr("new")}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.PostUpdate{Title: ptr("")}), ErrEmptyTitle)
	assert.ErrorIs(t, v.Validate(context.Background(), &models.PostUpdate{Content: ptr(" ")}), ErrEmptyContent)
}

func TestValidate_Comments(t *testing.T) {
	v := NewBlogValidator()

	assert.NoError(t, v.Validate(context.Background(), models.CommentCreate{Body: "hi"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.CommentCreate{}), ErrEmptyBody)
	assert.NoError(t, v.Validate(context.Background(), models.CommentUpdate{}))
	assert.ErrorIs(t, v.Validate(context.Background(), &models.CommentUpdate{Body: ptr("")}), ErrEmptyBody)
}
