package service

import (
	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/crypto"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/validators"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	PostService    PostService
	CommentService CommentService
}

// NewServices builds every service on top of storages. Services that accept
// request payloads are wrapped with validation.
func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) *Services {
	validator := validators.NewBlogValidator()

	return &Services{
		AuthService: NewAuthValidationService(validator).
			Wrap(NewAuthService(storages.UserRepository, hasher, cfg, logger)),
		UserService: NewUserService(storages.UserRepository, logger),
		PostService: NewPostValidationService(validator).
			Wrap(NewPostService(storages.PostRepository, logger)),
		CommentService: NewCommentValidationService(validator).
			Wrap(NewCommentService(storages.CommentRepository, storages.PostRepository, logger)),
	}
}
