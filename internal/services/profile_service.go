package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/justsurfingit/job-platform/internal/dtos"
	"github.com/justsurfingit/job-platform/internal/models"
	"github.com/justsurfingit/job-platform/internal/repository"
)

// ProfileService reads and edits the profile fields stored on a user. The
// email identifies the account and is never changed.
type ProfileService interface {
	GetEmployeeProfile(ctx context.Context, email string) (dtos.EmployeeProfileDTO, error)
	UpdateEmployeeProfile(ctx context.Context, req dtos.EmployeeProfileDTO) (dtos.EmployeeProfileDTO, error)
	GetRecruiterProfile(ctx context.Context, email string) (dtos.RecruiterProfileDTO, error)
	SaveRecruiterProfile(ctx context.Context, req dtos.RecruiterProfileDTO) (dtos.RecruiterProfileDTO, error)
}

type profileService struct {
	users repository.UserRepository
}

func NewProfileService(users repository.UserRepository) ProfileService {
	return &profileService{users: users}
}

func (s *profileService) GetEmployeeProfile(ctx context.Context, email string) (dtos.EmployeeProfileDTO, error) {
	u, err := s.load(ctx, email, models.RoleEmployee)
	if err != nil {
		return dtos.EmployeeProfileDTO{}, err
	}
	return dtos.NewEmployeeProfileDTO(u), nil
}

func (s *profileService) UpdateEmployeeProfile(ctx context.Context, req dtos.EmployeeProfileDTO) (dtos.EmployeeProfileDTO, error) {
	if err := singleLine(req.Name, req.Phone); err != nil {
		return dtos.EmployeeProfileDTO{}, err
	}
	u, err := s.load(ctx, req.Email, models.RoleEmployee)
	if err != nil {
		return dtos.EmployeeProfileDTO{}, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		u.Name = name
	}
	u.Phone = strings.TrimSpace(req.Phone)
	u.Address = strings.TrimSpace(req.Address)
	u.Skills = strings.TrimSpace(req.Skills)
	u.Experience = strings.TrimSpace(req.Experience)

	if err := s.users.Update(ctx, &u); err != nil {
		return dtos.EmployeeProfileDTO{}, fmt.Errorf("update employee profile: %w", err)
	}
	return dtos.NewEmployeeProfileDTO(u), nil
}

func (s *profileService) GetRecruiterProfile(ctx context.Context, email string) (dtos.RecruiterProfileDTO, error) {
	u, err := s.load(ctx, email, models.RoleRecruiter)
	if err != nil {
		return dtos.RecruiterProfileDTO{}, err
	}
	return dtos.NewRecruiterProfileDTO(u), nil
}

func (s *profileService) SaveRecruiterProfile(ctx context.Context, req dtos.RecruiterProfileDTO) (dtos.RecruiterProfileDTO, error) {
	if err := singleLine(req.Name, req.Phone, req.CompanyName); err != nil {
		return dtos.RecruiterProfileDTO{}, err
	}
	u, err := s.load(ctx, req.Email, models.RoleRecruiter)
	if err != nil {
		return dtos.RecruiterProfileDTO{}, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		u.Name = name
	}
	u.Phone = strings.TrimSpace(req.Phone)
	u.CompanyName = strings.TrimSpace(req.CompanyName)
	u.CompanyAddress = strings.TrimSpace(req.CompanyAddress)

	if err := s.users.Update(ctx, &u); err != nil {
		return dtos.RecruiterProfileDTO{}, fmt.Errorf("save recruiter profile: %w", err)
	}
	return dtos.NewRecruiterProfileDTO(u), nil
}

// load returns ErrNotFound for unknown emails and for accounts of another
// role.
func (s *profileService) load(ctx context.Context, email string, role models.Role) (models.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return models.User{}, fmt.Errorf("%w: email is required", ErrValidation)
	}
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return models.User{}, fmt.Errorf("%w: %s profile %s", ErrNotFound, strings.ToLower(string(role)), email)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("load user %s: %w", email, err)
	}
	if u.Role != role {
		return models.User{}, fmt.Errorf("%w: %s profile %s", ErrNotFound, strings.ToLower(string(role)), email)
	}
	return u, nil
}

func singleLine(fields ...string) error {
	for _, f := range fields {
		if hasControlChars(f) {
			return fmt.Errorf("%w: profile fields must be single-line text", ErrValidation)
		}
	}
	return nil
}
