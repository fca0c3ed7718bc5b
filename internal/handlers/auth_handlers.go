package handlers

import (
	"errors"
	"net/http"
	"time"

	"lexi2/internal/common"
	"lexi2/internal/models"
	"lexi2/internal/repositories"
	"lexi2/internal/services"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"lexi2/internal/logger"
)

const trialPeriod = 7 * 24 * time.Hour

// AuthHandlers handles registration, login, and profile requests
type AuthHandlers struct {
	authService services.AuthService
	userRepo    repositories.UserRepository
}

// NewAuthHandlers creates a new auth handlers instance
func NewAuthHandlers(authService services.AuthService, userRepo repositories.UserRepository) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		userRepo:    userRepo,
	}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=6"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Company   *string `json:"company"`
	Phone     *string `json:"phone"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned on successful registration or login
type TokenResponse struct {
	AccessToken string               `json:"access_token"`
	TokenType   string               `json:"token_type"`
	User        *models.UserResponse `json:"user"`
}

// Register handles new user registration
func (h *AuthHandlers) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := common.ValidateEmail(req.Email, "email"); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(req.Password) < 6 {
		return echo.NewHTTPError(http.StatusBadRequest, "Password must be at least 6 characters")
	}

	passwordHash, err := h.authService.HashPassword(req.Password)
	if err != nil {
		logger.Get().Error("failed to hash password", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create user")
	}

	now := time.Now().UTC()
	trialEndsAt := now.Add(trialPeriod)

	user := &models.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Company:      req.Company,
		Phone:        req.Phone,
		Plan:         models.PlanTrial,
		Status:       models.UserTrial,
		TrialEndsAt:  &trialEndsAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return echo.NewHTTPError(http.StatusBadRequest, "Email already registered")
		}
		logger.Get().Error("failed to create user", zap.String("email", req.Email), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	token, err := h.authService.GenerateToken(user.ID, user.Email, services.DefaultTokenTTL)
	if err != nil {
		logger.Get().Error("failed to generate token", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.ToResponse(),
	})
}

// Login handles user login with email and password. Login performs no writes.
func (h *AuthHandlers) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required")
	}

	user, err := h.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
		}
		logger.Get().Error("failed to look up user", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	if !h.authService.CheckPassword(req.Password, user.PasswordHash) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	token, err := h.authService.GenerateToken(user.ID, user.Email, services.DefaultTokenTTL)
	if err != nil {
		logger.Get().Error("failed to generate token", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.ToResponse(),
	})
}

// Profile returns the authenticated user's profile
func (h *AuthHandlers) Profile(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	user, err := h.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendNotFoundError(c, "User")
		}
		logger.Get().Error("failed to fetch profile", zap.String("user_id", userID.String()), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, user.ToResponse())
}

// Logout acknowledges logout. Tokens are stateless; the client discards its
// copy and no server-side invalidation happens.
func (h *AuthHandlers) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Successfully logged out",
	})
}
