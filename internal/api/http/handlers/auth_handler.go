package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/senbim-immo/admin-service/internal/api/dto"
	"github.com/senbim-immo/admin-service/internal/auth"
	"github.com/senbim-immo/admin-service/internal/domain"
	"github.com/senbim-immo/admin-service/internal/service"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

// AuthHandler manages dashboard session endpoints.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, token, expiresAt, err := h.service.Login(c.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		return err
	}
	if user.Role != domain.UserRoleAdmin {
		return apperrors.NewForbidden("admin role required")
	}
	return c.JSON(fiber.Map{"data": dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      userResponse(user),
	}})
}

// Logout POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.service.Logout(c.Context(), principal.User.ID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"logged_out": true}})
}

// Me GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{"data": userResponse(principal.User)})
}

func userResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:                   user.ID,
		Email:                user.Email,
		FullName:             user.FullName,
		Phone:                user.Phone,
		Role:                 user.Role,
		AccountStatus:        user.AccountStatus,
		AccountType:          user.AccountType,
		EmailVerified:        user.EmailVerified,
		PhoneVerified:        user.PhoneVerified,
		Region:               user.Region,
		NotificationSettings: user.NotificationSettings,
		CreatedAt:            user.CreatedAt,
		UpdatedAt:            user.UpdatedAt,
	}
}
