package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return u.userRepository.ListUsers(ctx)
}

// DeleteUser removes the caller's own account. Accounts that still own posts
// or comments are kept and ErrUserHasDependents is returned.
func (u *userService) DeleteUser(ctx context.Context, caller models.User) error {
	log := logger.FromContext(ctx)

	err := u.userRepository.DeleteUser(ctx, caller.UserID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrUserHasDependents):
		return ErrUserHasDependents
	case errors.Is(err, store.ErrUserNotFound):
		return ErrUnauthorized
	default:
		log.Err(err).Int64("user_id", caller.UserID).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}
}
