package dtos

import (
	"encoding/json"
	"time"

	"github.com/justsurfingit/job-platform/internal/models"
)

type ApplicationDTO struct {
	ID             uint                     `json:"id,omitempty"`
	EmployeeEmail  string                   `json:"employeeEmail" binding:"required,email"`
	EmployeeName   string                   `json:"employeeName,omitempty"`
	RecruiterEmail string                   `json:"recruiterEmail,omitempty"`
	JobID          int64                    `json:"jobId" binding:"required,gt=0"`
	JobTitle       string                   `json:"jobTitle,omitempty"`
	CompanyName    string                   `json:"companyName,omitempty"`
	Status         models.ApplicationStatus `json:"status,omitempty"`
	AppliedDate    *time.Time               `json:"appliedDate,omitempty"`
}

// UnmarshalJSON also accepts "applicantEmail" for the employee's address.
func (d *ApplicationDTO) UnmarshalJSON(data []byte) error {
	type plain ApplicationDTO
	aux := struct {
		*plain
		ApplicantEmail string `json:"applicantEmail"`
	}{plain: (*plain)(d)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if d.EmployeeEmail == "" {
		d.EmployeeEmail = aux.ApplicantEmail
	}
	return nil
}

func NewApplicationDTO(a models.Application) ApplicationDTO {
	applied := a.AppliedDate
	return ApplicationDTO{
		ID:             a.ID,
		EmployeeEmail:  a.EmployeeEmail,
		EmployeeName:   a.EmployeeName,
		RecruiterEmail: a.RecruiterEmail,
		JobID:          int64(a.JobPostID),
		JobTitle:       a.JobTitle,
		CompanyName:    a.CompanyName,
		Status:         a.Status,
		AppliedDate:    &applied,
	}
}

type UpdateApplicationStatusDTO struct {
	ApplicationID uint                     `json:"applicationId" binding:"required"`
	Status        models.ApplicationStatus `json:"status" binding:"required"`
}

func NewUpdateApplicationStatusDTO(applicationID uint, status models.ApplicationStatus) UpdateApplicationStatusDTO {
	return UpdateApplicationStatusDTO{ApplicationID: applicationID, Status: status}
}
