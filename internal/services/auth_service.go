package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/justsurfingit/job-platform/internal/dtos"
	"github.com/justsurfingit/job-platform/internal/logger"
	"github.com/justsurfingit/job-platform/internal/models"
	"github.com/justsurfingit/job-platform/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, req dtos.RegisterRequest) (dtos.AuthResponse, error)
	Login(ctx context.Context, req dtos.LoginRequest) (dtos.AuthResponse, error)
}

// LoginLimiter throttles repeated failed logins for one email.
type LoginLimiter interface {
	Blocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

type authService struct {
	users   repository.UserRepository
	tokens  *TokenIssuer
	limiter LoginLimiter
}

// NewAuthService accepts a nil limiter, which disables throttling.
func NewAuthService(users repository.UserRepository, tokens *TokenIssuer, limiter LoginLimiter) AuthService {
	return &authService{users: users, tokens: tokens, limiter: limiter}
}

func (s *authService) Register(ctx context.Context, req dtos.RegisterRequest) (dtos.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || strings.TrimSpace(req.Name) == "" || req.Password == "" {
		return dtos.AuthResponse{}, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}

	role := req.Role
	if role == "" {
		role = models.RoleEmployee
	}
	if !role.Valid() {
		return dtos.AuthResponse{}, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}
	if role == models.RoleAdmin {
		return dtos.AuthResponse{}, fmt.Errorf("%w: admin accounts cannot self-register", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dtos.AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return dtos.AuthResponse{}, fmt.Errorf("%w: user %s", ErrConflict, email)
		}
		return dtos.AuthResponse{}, fmt.Errorf("create user: %w", err)
	}
	logger.Info("AuthService", "registered %s as %s", user.Email, user.Role)

	return s.respond(user)
}

func (s *authService) Login(ctx context.Context, req dtos.LoginRequest) (dtos.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return dtos.AuthResponse{}, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	if s.limiter != nil {
		blocked, err := s.limiter.Blocked(ctx, email)
		if err != nil {
			logger.Error("AuthService", "login limiter unavailable", err)
		} else if blocked {
			return dtos.AuthResponse{}, ErrTooManyAttempts
		}
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return dtos.AuthResponse{}, fmt.Errorf("load user: %w", err)
	}
	if err != nil || !user.IsActive ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		s.recordFailure(ctx, email)
		return dtos.AuthResponse{}, ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			logger.Error("AuthService", "reset login attempts", err)
		}
	}
	return s.respond(user)
}

func (s *authService) recordFailure(ctx context.Context, email string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		logger.Error("AuthService", "record failed login", err)
	}
}

func (s *authService) respond(u models.User) (dtos.AuthResponse, error) {
	token, err := s.tokens.Issue(u)
	if err != nil {
		return dtos.AuthResponse{}, err
	}
	return dtos.NewAuthResponse(token, u.Email, u.Name, u.Role), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
