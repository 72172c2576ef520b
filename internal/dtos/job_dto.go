package dtos

import "github.com/justsurfingit/job-platform/internal/models"

type JobExtractionRequest struct {
	RawHTML string `json:"rawHtml" binding:"required"`
	URL     string `json:"url"`
}

// DeadlineLayout is the date-only format used for deadLineDate and
// postedDate on the wire.
const DeadlineLayout = "2006-01-02"

type JobPostDTO struct {
	ID             uint           `json:"id,omitempty"`
	JobTitle       string         `json:"jobTitle" binding:"required"`
	CompanyName    string         `json:"companyName" binding:"required"`
	JobType        models.JobType `json:"jobType"` // Defaults to FULL_TIME if empty
	JobDescription string         `json:"jobDescription"`
	JobLocation    string         `json:"jobLocation"`
	DeadLineDate   string         `json:"deadLineDate,omitempty"`
	PostedDate     string         `json:"postedDate,omitempty"` // ignored on input
	RecruiterEmail string         `json:"recruiterEmail"`
}

func NewJobPostDTO(j models.JobPost) JobPostDTO {
	dto := JobPostDTO{
		ID:             j.ID,
		JobTitle:       j.Title,
		CompanyName:    j.CompanyName,
		JobType:        j.JobType,
		JobDescription: j.Description,
		JobLocation:    j.Location,
		RecruiterEmail: j.RecruiterEmail,
	}
	if !j.CreatedAt.IsZero() {
		dto.PostedDate = j.CreatedAt.Format(DeadlineLayout)
	}
	if j.DeadlineDate != nil {
		dto.DeadLineDate = j.DeadlineDate.Format(DeadlineLayout)
	}
	return dto
}
