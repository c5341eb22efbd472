package usecase

import (
	"context"
	"errors"
	"strings"

	"staffing/internal/pkg/jwt"
	"staffing/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (repository.User, string, string, error)
	Login(ctx context.Context, in LoginInput) (repository.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	users repository.UserRepository
	jwt   jwt.Service
}

func NewAuthUsecase(users repository.UserRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (repository.User, string, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || len(strings.TrimSpace(in.Password)) < 8 {
		return repository.User{}, "", "", ErrInvalidInput
	}

	exists, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		return repository.User{}, "", "", ErrInternal
	}
	if exists {
		return repository.User{}, "", "", ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return repository.User{}, "", "", ErrInternal
	}

	usr := repository.User{ID: uuid.New(), Email: email, PasswordHash: string(hash)}
	if err := u.users.Create(ctx, usr); err != nil {
		return repository.User{}, "", "", ErrInternal
	}

	return u.withTokens(usr)
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (repository.User, string, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return repository.User{}, "", "", ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.User{}, "", "", ErrInvalidCredentials
		}
		return repository.User{}, "", "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return repository.User{}, "", "", ErrInvalidCredentials
	}

	return u.withTokens(usr)
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", ErrInternal
	}

	_, access, refresh, err := u.withTokens(usr)
	return access, refresh, err
}

func (u *Auth) withTokens(usr repository.User) (repository.User, string, string, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email)
	if err != nil {
		return repository.User{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return repository.User{}, "", "", ErrInternal
	}

	usr.PasswordHash = ""
	return usr, access, refresh, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
