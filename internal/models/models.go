package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleEmployee  Role = "EMPLOYEE"
	RoleRecruiter Role = "RECRUITER"
	RoleAdmin     Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "PENDING"
	StatusAccepted ApplicationStatus = "ACCEPTED"
	StatusRejected ApplicationStatus = "REJECTED"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeInternship JobType = "INTERNSHIP"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"type:text;not null;default:'EMPLOYEE'" json:"role"`
	IsActive     bool   `gorm:"not null;default:true" json:"is_active"`

	// profile fields; employees use the first group, recruiters the second
	Phone          string `json:"phone"`
	Address        string `gorm:"type:text" json:"address"`
	Skills         string `gorm:"type:text" json:"skills"`
	Experience     string `gorm:"type:text" json:"experience"`
	CompanyName    string `json:"company_name"`
	CompanyAddress string `gorm:"type:text" json:"company_address"`
}

type JobPost struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title          string     `gorm:"not null" json:"job_title"`
	CompanyName    string     `gorm:"index;not null" json:"company_name"`
	JobType        JobType    `gorm:"type:text;not null;default:'FULL_TIME'" json:"job_type"`
	Description    string     `gorm:"type:text" json:"job_description"`
	Location       string     `json:"job_location"`
	DeadlineDate   *time.Time `json:"deadline_date"`
	RecruiterEmail string     `gorm:"index;not null" json:"recruiter_email"`
}

// Application denormalises the job title, company and recruiter so list
// queries never need a join.
type Application struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	JobPostID      uint              `gorm:"index;not null" json:"job_post_id"`
	EmployeeEmail  string            `gorm:"index;not null" json:"employee_email"`
	EmployeeName   string            `json:"employee_name"`
	RecruiterEmail string            `gorm:"index" json:"recruiter_email"`
	JobTitle       string            `json:"job_title"`
	CompanyName    string            `json:"company_name"`
	Status         ApplicationStatus `gorm:"type:text;not null;default:'PENDING';check:status IN ('PENDING', 'ACCEPTED', 'REJECTED')" json:"status"`
	AppliedDate    time.Time         `gorm:"not null" json:"applied_date"`
}
