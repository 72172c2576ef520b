package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/justsurfingit/job-platform/internal/dtos"
	"github.com/justsurfingit/job-platform/internal/models"
	"github.com/justsurfingit/job-platform/internal/repository"
)

type JobPostService interface {
	CreateJobPost(ctx context.Context, req dtos.JobPostDTO) (dtos.JobPostDTO, error)
	ListJobPosts(ctx context.Context) ([]dtos.JobPostDTO, error)
	SearchJobPosts(ctx context.Context, term string) ([]dtos.JobPostDTO, error)
	GetByRecruiterEmail(ctx context.Context, email string) ([]dtos.JobPostDTO, error)
}

type jobPostService struct {
	jobs repository.JobPostRepository
}

func NewJobPostService(jobs repository.JobPostRepository) JobPostService {
	return &jobPostService{jobs: jobs}
}

func (s *jobPostService) CreateJobPost(ctx context.Context, req dtos.JobPostDTO) (dtos.JobPostDTO, error) {
	title := strings.TrimSpace(req.JobTitle)
	company := strings.TrimSpace(req.CompanyName)
	recruiter := normalizeEmail(req.RecruiterEmail)
	if title == "" || company == "" || recruiter == "" {
		return dtos.JobPostDTO{}, fmt.Errorf("%w: jobTitle, companyName and recruiterEmail are required", ErrValidation)
	}
	if hasControlChars(title) || hasControlChars(company) || hasControlChars(req.JobLocation) {
		return dtos.JobPostDTO{}, fmt.Errorf("%w: jobTitle, companyName and jobLocation must be single-line text", ErrValidation)
	}

	jobType := req.JobType
	if jobType == "" {
		jobType = models.JobTypeFullTime
	}
	if !jobType.Valid() {
		return dtos.JobPostDTO{}, fmt.Errorf("%w: unknown jobType %q", ErrValidation, jobType)
	}

	job := models.JobPost{
		Title:          title,
		CompanyName:    company,
		JobType:        jobType,
		Description:    req.JobDescription,
		Location:       req.JobLocation,
		RecruiterEmail: recruiter,
	}
	if req.DeadLineDate != "" {
		deadline, err := time.Parse(dtos.DeadlineLayout, req.DeadLineDate)
		if err != nil {
			return dtos.JobPostDTO{}, fmt.Errorf("%w: deadLineDate must be YYYY-MM-DD", ErrValidation)
		}
		job.DeadlineDate = &deadline
	}

	if err := s.jobs.Create(ctx, &job); err != nil {
		return dtos.JobPostDTO{}, fmt.Errorf("create job post: %w", err)
	}
	return dtos.NewJobPostDTO(job), nil
}

func (s *jobPostService) ListJobPosts(ctx context.Context) ([]dtos.JobPostDTO, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list job posts: %w", err)
	}
	return toJobPostDTOs(jobs), nil
}

func (s *jobPostService) SearchJobPosts(ctx context.Context, term string) ([]dtos.JobPostDTO, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.ListJobPosts(ctx)
	}
	jobs, err := s.jobs.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search job posts: %w", err)
	}
	return toJobPostDTOs(jobs), nil
}

func (s *jobPostService) GetByRecruiterEmail(ctx context.Context, email string) ([]dtos.JobPostDTO, error) {
	jobs, err := s.jobs.ListByRecruiterEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("list job posts for recruiter: %w", err)
	}
	return toJobPostDTOs(jobs), nil
}

func toJobPostDTOs(jobs []models.JobPost) []dtos.JobPostDTO {
	out := make([]dtos.JobPostDTO, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, dtos.NewJobPostDTO(j))
	}
	return out
}

func hasControlChars(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}
