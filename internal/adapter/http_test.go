// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(Config{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── NewHTTPServerAdapter ────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash", raw: " https://blog.example.com/ ", want: "https://blog.example.com"},
		{name: "empty", raw: "  ", wantErr: ErrEmptyAddress},
		{name: "no host", raw: "http://", wantErr: ErrAddressNoHost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(Config{}, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/register", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice@example.com", body.Email)
		assert.Equal(t, "secret", body.Password)

		writeTestJSON(t, w, http.StatusOK, models.UserPublic{ID: 7, Email: body.Email})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.Credentials{Email: "alice@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, models.UserPublic{ID: 7, Email: "alice@example.com"}, got)
	assert.Empty(t, a.Token(), "registration does not log in")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Detail: "Email already registered"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.Credentials{Email: "alice@example.com", Password: "secret"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Email already registered")
}

func TestLogin_SendsFormAndStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "alice@example.com", r.PostForm.Get("username"))
		assert.Equal(t, "secret", r.PostForm.Get("password"))

		writeTestJSON(t, w, http.StatusOK, models.AccessTokenResponse{AccessToken: "abc.def.ghi", TokenType: "bearer"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.Credentials{Email: "alice@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "bearer", got.TokenType)
	assert.Equal(t, "abc.def.ghi", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeTestJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Detail: "Incorrect username or password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "alice@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestLogin_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(t, w, http.StatusOK, models.AccessTokenResponse{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "alice@example.com", Password: "secret"})

	assert.ErrorIs(t, err, ErrNoToken)
}

// ── authenticated calls ─────────────────────────────────────────────────────

func TestAuthedCall_WithoutTokenFailsFast(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreatePost(context.Background(), models.PostCreate{Title: "t", Content: "c"})

	assert.ErrorIs(t, err, ErrNoToken)
	assert.False(t, called)
}

func TestCreatePost_SendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/posts", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var body models.PostCreate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeTestJSON(t, w, http.StatusOK, models.Post{PostID: 3, Title: body.Title, Content: body.Content, OwnerID: 1})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" tok ")
	got, err := a.CreatePost(context.Background(), models.PostCreate{Title: "Hello", Content: "World"})

	require.NoError(t, err)
	assert.Equal(t, models.Post{PostID: 3, Title: "Hello", Content: "World", OwnerID: 1}, got)
}

func TestUpdatePost_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/posts/5", r.URL.Path)
		writeTestJSON(t, w, http.StatusForbidden, models.ErrorResponse{Detail: "Not authorized to update this post"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")
	title := "new"
	_, err := a.UpdatePost(context.Background(), 5, models.PostUpdate{Title: &title})

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, err.Error(), "Not authorized to update this post")
}

func TestDeleteComment_Path(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/comments/11", r.URL.Path)
		writeTestJSON(t, w, http.StatusOK, models.MessageResponse{Message: "Comment deleted successfully"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	assert.NoError(t, a.DeleteComment(context.Background(), 11))
}

func TestListComments_DecodesOwners(t *testing.T) {
	want := []models.CommentWithOwner{{
		Comment: models.Comment{CommentID: 1, Body: "hi", OwnerID: 2, PostID: 4},
		Owner:   models.UserPublic{ID: 2, Email: "bob@example.com"},
	}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/4/comments", r.URL.Path)
		writeTestJSON(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ListComments(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── error mapping ───────────────────────────────────────────────────────────

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantDetail string
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"detail":"Post not found"}`, wantErr: ErrNotFound, wantDetail: "Post not found"},
		{name: "conflict", status: http.StatusConflict, body: `{"detail":"User still owns posts or comments"}`, wantErr: ErrConflict, wantDetail: "User still owns posts or comments"},
		{name: "plain text body", status: http.StatusInternalServerError, body: "boom", wantErr: ErrInternalServerError, wantDetail: "boom"},
		{name: "empty body", status: http.StatusTeapot, wantErr: ErrUnexpectedStatus, wantDetail: http.StatusText(http.StatusTeapot)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.GetPost(context.Background(), 1)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantDetail)
		})
	}
}
