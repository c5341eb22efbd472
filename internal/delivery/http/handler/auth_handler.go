package handler

import (
	"errors"
	"strings"
	"time"

	"staffing/internal/delivery/http/middleware"
	"staffing/internal/pkg/response"
	"staffing/internal/repository"
	"staffing/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/refresh", h.Refresh)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req credentialsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, access, refresh, err := h.uc.Register(c.Context(), usecase.RegisterInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, tokenData(usr, access, refresh))
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req credentialsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, access, refresh, err := h.uc.Login(c.Context(), usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, tokenData(usr, access, refresh))
}

func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	tok, ok := bearerFromAuthorizationHeader(c.Get("Authorization"))
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	access, refresh, err := h.uc.Refresh(c.Context(), tok)
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	data := map[string]any{
		"access_token":  access,
		"refresh_token": refresh,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func tokenData(usr repository.User, access, refresh string) map[string]any {
	return map[string]any{
		"user":          userResponse{ID: usr.ID, Email: usr.Email, CreatedAt: usr.CreatedAt},
		"access_token":  access,
		"refresh_token": refresh,
	}
}

func mapAuthUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered", nil, err)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", nil, err)
	case errors.Is(err, usecase.ErrRefreshTokenExpired):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", nil, err)
	case errors.Is(err, usecase.ErrInvalidRefreshToken):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid refresh token", nil, err)
	default:
		return mapUsecaseError(err)
	}
}

func bearerFromAuthorizationHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	if tok == "" {
		return "", false
	}
	return tok, true
}
