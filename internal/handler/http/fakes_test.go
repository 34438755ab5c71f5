package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/models"
)

// ─────────────────────────────────────────────
// Test users and tokens
// ─────────────────────────────────────────────

var (
	alice = models.User{UserID: 1, Email: "alice@x.com", PasswordHash: "alice-hash"}
	bob   = models.User{UserID: 2, Email: "bob@x.com", PasswordHash: "bob-hash"}
)

const (
	aliceToken   = "alice-token"
	bobToken     = "bob-token"
	expiredToken = "expired-token"
	ghostToken   = "ghost-token"
)

// ─────────────────────────────────────────────
// Fake services
// ─────────────────────────────────────────────

// fakeAuthService implements service.AuthService. Unset function fields fall
// back to a fixed token table: aliceToken and bobToken resolve to their users,
// expiredToken is expired and ghostToken belongs to a deleted account.
type fakeAuthService struct {
	registerUserFn func(ctx context.Context, c models.Credentials) (models.User, error)
	loginFn        func(ctx context.Context, c models.Credentials) (models.User, error)
	createTokenFn  func(ctx context.Context, u models.User) (models.Token, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, c models.Credentials) (models.User, error) {
	return f.registerUserFn(ctx, c)
}

func (f *fakeAuthService) Login(ctx context.Context, c models.Credentials) (models.User, error) {
	return f.loginFn(ctx, c)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, u models.User) (models.Token, error) {
	if f.createTokenFn != nil {
		return f.createTokenFn(ctx, u)
	}
	return models.Token{Claims: models.Claims{Email: u.Email}, SignedString: "signed-" + u.Email}, nil
}

func (f *fakeAuthService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	switch tokenString {
	case aliceToken:
		return models.Token{Claims: models.Claims{Email: alice.Email}, SignedString: tokenString}, nil
	case bobToken:
		return models.Token{Claims: models.Claims{Email: bob.Email}, SignedString: tokenString}, nil
	case ghostToken:
		return models.Token{Claims: models.Claims{Email: "ghost@x.com"}, SignedString: tokenString}, nil
	case expiredToken:
		return models.Token{}, service.ErrTokenExpired
	default:
		return models.Token{}, service.ErrTokenInvalid
	}
}

func (f *fakeAuthService) ResolveUser(_ context.Context, token models.Token) (models.User, error) {
	switch token.Email() {
	case alice.Email:
		return alice, nil
	case bob.Email:
		return bob, nil
	default:
		return models.User{}, service.ErrUnauthorized
	}
}

type fakeUserService struct {
	listUsersFn  func(ctx context.Context) ([]models.User, error)
	deleteUserFn func(ctx context.Context, caller models.User) error
}

func (f *fakeUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return f.listUsersFn(ctx)
}

func (f *fakeUserService) DeleteUser(ctx context.Context, caller models.User) error {
	return f.deleteUserFn(ctx, caller)
}

type fakePostService struct {
	createPostFn func(ctx context.Context, owner models.User, p models.PostCreate) (models.Post, error)
	listPostsFn  func(ctx context.Context) ([]models.PostWithOwner, error)
	getPostFn    func(ctx context.Context, postID int64) (models.PostWithComments, error)
	updatePostFn func(ctx context.Context, caller models.User, postID int64, u models.PostUpdate) (models.Post, error)
	deletePostFn func(ctx context.Context, caller models.User, postID int64) error
}

func (f *fakePostService) CreatePost(ctx context.Context, owner models.User, p models.PostCreate) (models.Post, error) {
	return f.createPostFn(ctx, owner, p)
}

func (f *fakePostService) ListPosts(ctx context.Context) ([]models.PostWithOwner, error) {
	return f.listPostsFn(ctx)
}

func (f *fakePostService) GetPost(ctx context.Context, postID int64) (models.PostWithComments, error) {
	return f.getPostFn(ctx, postID)
}

func (f *fakePostService) UpdatePost(ctx context.Context, caller models.User, postID int64, u models.PostUpdate) (models.Post, error) {
	return f.updatePostFn(ctx, caller, postID, u)
}

func (f *fakePostService) DeletePost(ctx context.Context, caller models.User, postID int64) error {
	return f.deletePostFn(ctx, caller, postID)
}

type fakeCommentService struct {
	createCommentFn func(ctx context.Context, owner models.User, postID int64, c models.CommentCreate) (models.Comment, error)
	listCommentsFn  func(ctx context.Context, postID int64) ([]models.CommentWithOwner, error)
	getCommentFn    func(ctx context.Context, commentID int64) (models.CommentWithOwner, error)
	updateCommentFn func(ctx context.Context, caller models.User, commentID int64, u models.CommentUpdate) (models.Comment, error)
	deleteCommentFn func(ctx context.Context, caller models.User, commentID int64) error
}

func (f *fakeCommentService) CreateComment(ctx context.Context, owner models.User, postID int64, c models.CommentCreate) (models.Comment, error) {
	return f.createCommentFn(ctx, owner, postID, c)
}

func (f *fakeCommentService) ListComments(ctx context.Context, postID int64) ([]models.CommentWithOwner, error) {
	return f.listCommentsFn(ctx, postID)
}

func (f *fakeCommentService) GetComment(ctx context.Context, commentID int64) (models.CommentWithOwner, error) {
	return f.getCommentFn(ctx, commentID)
}

func (f *fakeCommentService) UpdateComment(ctx context.Context, caller models.User, commentID int64, u models.CommentUpdate) (models.Comment, error) {
	return f.updateCommentFn(ctx, caller, commentID, u)
}

func (f *fakeCommentService) DeleteComment(ctx context.Context, caller models.User, commentID int64) error {
	return f.deleteCommentFn(ctx, caller, commentID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestRouter builds the full router on top of svcs. A nil AuthService is
// replaced with an empty fakeAuthService so that bearer auth works.
func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()
	if svcs.AuthService == nil {
		svcs.AuthService = &fakeAuthService{}
	}
	cfg := config.Server{RequestTimeout: 5 * time.Second, CORSAllowedOrigins: []string{"*"}}
	return NewHandler(svcs, cfg, logger.Nop()).Init()
}

// doRequest sends one request through router. A non-empty token is sent as
// a bearer token; body is sent as JSON.
func doRequest(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// mustNotCall fails the test if a service method is reached.
func mustNotCall(t *testing.T) {
	t.Helper()
	require.FailNow(t, "service must not be called")
}
