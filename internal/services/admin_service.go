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
)

type AdminService interface {
	ListUsers(ctx context.Context) ([]dtos.UserDTO, error)
	ListUsersByRole(ctx context.Context, role string) ([]dtos.UserDTO, error)
	SetUserActive(ctx context.Context, actorEmail string, req dtos.UpdateUserStatusDTO) (dtos.UserDTO, error)
	SystemStatus(ctx context.Context) (dtos.SystemStatusDTO, error)
}

// Counter is satisfied by the job post and application repositories.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type adminService struct {
	users repository.UserRepository
	jobs  Counter
	apps  Counter
}

func NewAdminService(users repository.UserRepository, jobs, apps Counter) AdminService {
	return &adminService{users: users, jobs: jobs, apps: apps}
}

func (s *adminService) ListUsers(ctx context.Context) ([]dtos.UserDTO, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return toUserDTOs(users), nil
}

func (s *adminService) ListUsersByRole(ctx context.Context, role string) ([]dtos.UserDTO, error) {
	r := models.Role(strings.ToUpper(strings.TrimSpace(role)))
	if !r.Valid() {
		return nil, fmt.Errorf("%w: role must be EMPLOYEE, RECRUITER or ADMIN", ErrValidation)
	}
	users, err := s.users.ListByRole(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("list %s users: %w", r, err)
	}
	return toUserDTOs(users), nil
}

// SetUserActive enables or disables an account. Admins cannot disable
// themselves.
func (s *adminService) SetUserActive(ctx context.Context, actorEmail string, req dtos.UpdateUserStatusDTO) (dtos.UserDTO, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.IsActive == nil {
		return dtos.UserDTO{}, fmt.Errorf("%w: email and isActive are required", ErrValidation)
	}
	active := *req.IsActive
	if !active && email == normalizeEmail(actorEmail) {
		return dtos.UserDTO{}, fmt.Errorf("%w: cannot deactivate your own account", ErrValidation)
	}

	if err := s.users.SetActive(ctx, email, active); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dtos.UserDTO{}, fmt.Errorf("%w: user %s", ErrNotFound, email)
		}
		return dtos.UserDTO{}, fmt.Errorf("set active for %s: %w", email, err)
	}
	logger.Info("AdminService", "%s set %s active=%t", actorEmail, email, active)

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return dtos.UserDTO{}, fmt.Errorf("reload user %s: %w", email, err)
	}
	return dtos.NewUserDTO(u), nil
}

func (s *adminService) SystemStatus(ctx context.Context) (dtos.SystemStatusDTO, error) {
	var status dtos.SystemStatusDTO
	var err error
	if status.TotalUsers, err = s.users.Count(ctx); err != nil {
		return dtos.SystemStatusDTO{}, fmt.Errorf("count users: %w", err)
	}
	if status.ActiveUsers, err = s.users.CountActive(ctx); err != nil {
		return dtos.SystemStatusDTO{}, fmt.Errorf("count active users: %w", err)
	}
	if status.TotalJobs, err = s.jobs.Count(ctx); err != nil {
		return dtos.SystemStatusDTO{}, fmt.Errorf("count job posts: %w", err)
	}
	if status.TotalApplications, err = s.apps.Count(ctx); err != nil {
		return dtos.SystemStatusDTO{}, fmt.Errorf("count applications: %w", err)
	}
	return status, nil
}

func toUserDTOs(users []models.User) []dtos.UserDTO {
	out := make([]dtos.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dtos.NewUserDTO(u))
	}
	return out
}
