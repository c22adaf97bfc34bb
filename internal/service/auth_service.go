package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"supercopa.app/backend/internal/dto"
	"supercopa.app/backend/internal/model"
	"supercopa.app/backend/internal/repository"
	"supercopa.app/backend/pkg/apperror"
)

type AuthService interface {
	Login(ctx context.Context, in dto.LoginInput) (*dto.AuthResponse, error)
	// EnsureAdmin creates the admin account on first boot when no account
	// exists yet.
	EnsureAdmin(ctx context.Context, username, password string) error
}

type authService struct {
	repo     repository.AdminRepository
	secret   string
	tokenTTL time.Duration
}

func NewAuthService(repo repository.AdminRepository, secret string, tokenTTL time.Duration) AuthService {
	return &authService{repo: repo, secret: secret, tokenTTL: tokenTTL}
}

func (s *authService) Login(ctx context.Context, in dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.repo.FindByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, apperror.ErrUnauthorized
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: token, Username: user.Username}, nil
}

func (s *authService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("auth: hash admin password: %w", err)
	}

	return s.repo.Create(ctx, &model.AdminUser{
		Username:     username,
		PasswordHash: string(hashed),
	})
}

func (s *authService) generateToken(user *model.AdminUser) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}
