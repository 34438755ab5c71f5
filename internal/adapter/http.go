package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/go-resty/resty/v2"
)

// Config holds the connection settings of the API client.
type Config struct {
	// HTTPAddress is the base address of the server, e.g. "localhost:8080"
	// or "https://blog.example.com". A missing scheme defaults to http.
	HTTPAddress string

	// RequestTimeout bounds every request. Zero disables the timeout.
	RequestTimeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/JSON implementation of
// [ServerAdapter]. It returns an error if cfg.HTTPAddress is empty or cannot
// be parsed as a URL with a host.
func NewHTTPServerAdapter(cfg Config, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrAddressNoHost
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs the credentials as JSON to /register.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.UserPublic, error) {
	var user models.UserPublic

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&user).
		Post("/register")
	if err != nil {
		return models.UserPublic{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserPublic{}, err
	}

	return user, nil
}

// Login POSTs an OAuth2 password form to /login: the email travels in the
// "username" field. The returned access token is stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.AccessTokenResponse, error) {
	var token models.AccessTokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": credentials.Email,
			"password": credentials.Password,
		}).
		SetResult(&token).
		Post("/login")
	if err != nil {
		return models.AccessTokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccessTokenResponse{}, err
	}
	if token.AccessToken == "" {
		return models.AccessTokenResponse{}, fmt.Errorf("login: %w", ErrNoToken)
	}

	h.SetToken(token.AccessToken)
	h.logger.Debug().Str("func", "httpServerAdapter.Login").Msg("access token stored")
	return token, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.UserPublic, error) {
	var user models.UserPublic
	if err := h.do(ctx, resty.MethodGet, "/me", nil, &user, true); err != nil {
		return models.UserPublic{}, fmt.Errorf("me: %w", err)
	}
	return user, nil
}

func (h *httpServerAdapter) DeleteMe(ctx context.Context) error {
	if err := h.do(ctx, resty.MethodDelete, "/me", nil, nil, true); err != nil {
		return fmt.Errorf("delete me: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.UserPublic, error) {
	var users []models.UserPublic
	if err := h.do(ctx, resty.MethodGet, "/users", nil, &users, false); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (h *httpServerAdapter) CreatePost(ctx context.Context, post models.PostCreate) (models.Post, error) {
	var created models.Post
	if err := h.do(ctx, resty.MethodPost, "/posts", post, &created, true); err != nil {
		return models.Post{}, fmt.Errorf("create post: %w", err)
	}
	return created, nil
}

func (h *httpServerAdapter) ListPosts(ctx context.Context) ([]models.PostWithOwner, error) {
	var posts []models.PostWithOwner
	if err := h.do(ctx, resty.MethodGet, "/posts", nil, &posts, false); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (h *httpServerAdapter) GetPost(ctx context.Context, postID int64) (models.PostWithComments, error) {
	var post models.PostWithComments
	if err := h.do(ctx, resty.MethodGet, postPath(postID), nil, &post, false); err != nil {
		return models.PostWithComments{}, fmt.Errorf("get post %d: %w", postID, err)
	}
	return post, nil
}

func (h *httpServerAdapter) UpdatePost(ctx context.Context, postID int64, update models.PostUpdate) (models.Post, error) {
	var updated models.Post
	if err := h.do(ctx, resty.MethodPut, postPath(postID), update, &updated, true); err != nil {
		return models.Post{}, fmt.Errorf("update post %d: %w", postID, err)
	}
	return updated, nil
}

func (h *httpServerAdapter) DeletePost(ctx context.Context, postID int64) error {
	if err := h.do(ctx, resty.MethodDelete, postPath(postID), nil, nil, true); err != nil {
		return fmt.Errorf("delete post %d: %w", postID, err)
	}
	return nil
}

func (h *httpServerAdapter) CreateComment(ctx context.Context, postID int64, comment models.CommentCreate) (models.Comment, error) {
	var created models.Comment
	if err := h.do(ctx, resty.MethodPost, postPath(postID)+"/comments", comment, &created, true); err != nil {
		return models.Comment{}, fmt.Errorf("create comment on post %d: %w", postID, err)
	}
	return created, nil
}

func (h *httpServerAdapter) ListComments(ctx context.Context, postID int64) ([]models.CommentWithOwner, error) {
	var comments []models.CommentWithOwner
	if err := h.do(ctx, resty.MethodGet, postPath(postID)+"/comments", nil, &comments, false); err != nil {
		return nil, fmt.Errorf("list comments of post %d: %w", postID, err)
	}
	return comments, nil
}

func (h *httpServerAdapter) GetComment(ctx context.Context, commentID int64) (models.CommentWithOwner, error) {
	var comment models.CommentWithOwner
	if err := h.do(ctx, resty.MethodGet, commentPath(commentID), nil, &comment, false); err != nil {
		return models.CommentWithOwner{}, fmt.Errorf("get comment %d: %w", commentID, err)
	}
	return comment, nil
}

func (h *httpServerAdapter) UpdateComment(ctx context.Context, commentID int64, update models.CommentUpdate) (models.Comment, error) {
	var updated models.Comment
	if err := h.do(ctx, resty.MethodPut, commentPath(commentID), update, &updated, true); err != nil {
		return models.Comment{}, fmt.Errorf("update comment %d: %w", commentID, err)
	}
	return updated, nil
}

func (h *httpServerAdapter) DeleteComment(ctx context.Context, commentID int64) error {
	if err := h.do(ctx, resty.MethodDelete, commentPath(commentID), nil, nil, true); err != nil {
		return fmt.Errorf("delete comment %d: %w", commentID, err)
	}
	return nil
}

// do sends a JSON request and decodes a successful response into result
// when it is non-nil. With authed set, a missing token fails fast with
// [ErrNoToken] instead of costing a round trip.
func (h *httpServerAdapter) do(ctx context.Context, method, path string, body, result any, authed bool) error {
	req := h.client.R().SetContext(ctx)

	if authed {
		token := h.Token()
		if token == "" {
			return ErrNoToken
		}
		req.SetAuthToken(token)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}
	return mapHTTPError(resp)
}

func postPath(postID int64) string {
	return "/posts/" + strconv.FormatInt(postID, 10)
}

func commentPath(commentID int64) string {
	return "/comments/" + strconv.FormatInt(commentID, 10)
}
