package service

import (
	"context"

	"github.com/senbim-immo/admin-service/internal/domain"
	"github.com/senbim-immo/admin-service/internal/repository"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

// UserService manages platform members from the admin screens.
type UserService struct {
	users repository.UserRepository
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns members matching the filter.
func (s *UserService) List(ctx context.Context, filter repository.UserFilter) ([]domain.User, error) {
	return s.users.List(ctx, filter)
}

// Get returns one member.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// ToggleSuspension flips a member between active and suspended. No other
// field changes; the member's listings stay as they are.
func (s *UserService) ToggleSuspension(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.AccountStatus == domain.AccountStatusActive {
		user.AccountStatus = domain.AccountStatusSuspended
	} else {
		user.AccountStatus = domain.AccountStatusActive
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UserProfileInput carries self-service profile fields.
type UserProfileInput struct {
	FullName             *string
	Phone                *string
	Region               *string
	NotificationSettings map[string]bool
}

// UpdateOwnProfile lets the authenticated admin update their own record.
func (s *UserService) UpdateOwnProfile(ctx context.Context, userID string, input UserProfileInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Region != nil {
		user.Region = *input.Region
	}
	if input.NotificationSettings != nil {
		user.NotificationSettings = input.NotificationSettings
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete permanently removes a member.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == domain.UserRoleAdmin {
		return apperrors.NewForbidden("admin accounts cannot be deleted from this screen")
	}
	return s.users.Delete(ctx, id)
}
