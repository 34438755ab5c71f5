package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/validators"
)

func TestReplyFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
		challenge  bool
	}{
		{name: "validation", err: fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrEmptyTitle), wantStatus: http.StatusBadRequest, wantDetail: "validation failed: title is required"},
		{name: "duplicate email", err: service.ErrDuplicateEmail, wantStatus: http.StatusBadRequest, wantDetail: "Email already registered"},
		{name: "invalid credentials", err: service.ErrInvalidCredentials, wantStatus: http.StatusBadRequest, wantDetail: "Incorrect username or password", challenge: true},
		{name: "expired", err: service.ErrTokenExpired, wantStatus: http.StatusUnauthorized, wantDetail: "Token has expired", challenge: true},
		{name: "unauthorized", err: service.ErrUnauthorized, wantStatus: http.StatusUnauthorized, wantDetail: "Could not validate credentials", challenge: true},
		{name: "forbidden comment delete", err: service.ErrForbiddenCommentDelete, wantStatus: http.StatusForbidden, wantDetail: "Not authorized to delete this comment"},
		{name: "generic forbidden", err: fmt.Errorf("wrapped: %w", service.ErrForbidden), wantStatus: http.StatusForbidden, wantDetail: "Not authorized"},
		{name: "post not found", err: service.ErrPostNotFound, wantStatus: http.StatusNotFound, wantDetail: "Post not found"},
		{name: "user has dependents", err: service.ErrUserHasDependents, wantStatus: http.StatusConflict, wantDetail: "User still owns posts or comments"},
		{name: "storage failure is hidden", err: fmt.Errorf("post storage failure: %w", store.ErrExecutingQuery), wantStatus: http.StatusInternalServerError, wantDetail: "Internal Server Error"},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantDetail: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := replyFromError(tt.err)
			assert.Equal(t, tt.wantStatus, reply.status)
			assert.Equal(t, tt.wantDetail, reply.detail)
			assert.Equal(t, tt.challenge, reply.challenge)
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
		})
	}
}
