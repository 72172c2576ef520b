package dtos

import "github.com/justsurfingit/job-platform/internal/models"

// UserDTO is the admin view of an account.
type UserDTO struct {
	ID       uint        `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
	IsActive bool        `json:"isActive"`
}

func NewUserDTO(u models.User) UserDTO {
	return UserDTO{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, IsActive: u.IsActive}
}

// UpdateUserStatusDTO uses a pointer so an explicit false passes the
// required check.
type UpdateUserStatusDTO struct {
	Email    string `json:"email" binding:"required,email"`
	IsActive *bool  `json:"isActive" binding:"required"`
}

func NewUpdateUserStatusDTO(email string, isActive bool) UpdateUserStatusDTO {
	return UpdateUserStatusDTO{Email: email, IsActive: &isActive}
}

type SystemStatusDTO struct {
	TotalUsers        int64 `json:"totalUsers"`
	ActiveUsers       int64 `json:"activeUsers"`
	TotalJobs         int64 `json:"totalJobs"`
	TotalApplications int64 `json:"totalApplications"`
}

type EmployeeProfileDTO struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
}

func NewEmployeeProfileDTO(u models.User) EmployeeProfileDTO {
	return EmployeeProfileDTO{
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		Address:    u.Address,
		Skills:     u.Skills,
		Experience: u.Experience,
	}
}

type RecruiterProfileDTO struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	CompanyName    string `json:"companyName"`
	CompanyAddress string `json:"companyAddress"`
}

func NewRecruiterProfileDTO(u models.User) RecruiterProfileDTO {
	return RecruiterProfileDTO{
		Name:           u.Name,
		Email:          u.Email,
		Phone:          u.Phone,
		CompanyName:    u.CompanyName,
		CompanyAddress: u.CompanyAddress,
	}
}
