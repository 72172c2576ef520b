package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/justsurfingit/job-platform/internal/dtos"
	"github.com/justsurfingit/job-platform/internal/events"
	"github.com/justsurfingit/job-platform/internal/logger"
	"github.com/justsurfingit/job-platform/internal/models"
	"github.com/justsurfingit/job-platform/internal/repository"
	"github.com/justsurfingit/job-platform/internal/worker"
)

type ApplicationService interface {
	ApplyJob(ctx context.Context, dto dtos.ApplicationDTO) error
	GetByEmployeeEmail(ctx context.Context, email string) ([]dtos.ApplicationDTO, error)
	GetByRecruiterEmail(ctx context.Context, email string) ([]dtos.ApplicationDTO, error)
	GetByJobID(ctx context.Context, jobID int64) ([]dtos.ApplicationDTO, error)
	UpdateApplicationStatus(ctx context.Context, dto dtos.UpdateApplicationStatusDTO) error
}

// JobSubmitter queues work off the request path; *worker.Pool satisfies it.
type JobSubmitter interface {
	Submit(job worker.Job) error
}

const backgroundTimeout = 15 * time.Second

type applicationService struct {
	apps       repository.ApplicationRepository
	jobs       repository.JobPostRepository
	users      repository.UserRepository
	publisher  events.Publisher
	notifier   Notifier
	background JobSubmitter
	now        func() time.Time
}

func NewApplicationService(
	apps repository.ApplicationRepository,
	jobs repository.JobPostRepository,
	users repository.UserRepository,
	publisher events.Publisher,
	notifier Notifier,
	background JobSubmitter,
) ApplicationService {
	return &applicationService{
		apps:       apps,
		jobs:       jobs,
		users:      users,
		publisher:  publisher,
		notifier:   notifier,
		background: background,
		now:        time.Now,
	}
}

func (s *applicationService) ApplyJob(ctx context.Context, dto dtos.ApplicationDTO) error {
	email := normalizeEmail(dto.EmployeeEmail)
	if email == "" {
		return fmt.Errorf("%w: employeeEmail is required", ErrValidation)
	}
	if dto.JobID <= 0 {
		return fmt.Errorf("%w: jobId must be a positive integer", ErrValidation)
	}

	job, err := s.jobs.GetByID(ctx, uint(dto.JobID))
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: job %d", ErrNotFound, dto.JobID)
	}
	if err != nil {
		return fmt.Errorf("load job %d: %w", dto.JobID, err)
	}

	recruiter := job.RecruiterEmail
	if recruiter == "" {
		recruiter = normalizeEmail(dto.RecruiterEmail)
	}

	app := models.Application{
		JobPostID:      job.ID,
		EmployeeEmail:  email,
		EmployeeName:   s.employeeName(ctx, email, dto.EmployeeName),
		RecruiterEmail: recruiter,
		JobTitle:       job.Title,
		CompanyName:    job.CompanyName,
		Status:         models.StatusPending,
		AppliedDate:    s.now().UTC(),
	}
	if err := s.apps.Create(ctx, &app); err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	logger.Info("ApplicationService", "application %d: %s applied to job %d", app.ID, email, job.ID)

	s.publish(events.NewApplicationEvent(events.ApplicationSubmitted,
		app.ID, app.JobPostID, app.EmployeeEmail, app.RecruiterEmail, string(app.Status)))
	return nil
}

// employeeName prefers the submitted name and falls back to the registered
// user's name.
func (s *applicationService) employeeName(ctx context.Context, email, submitted string) string {
	if name := strings.TrimSpace(submitted); name != "" {
		return name
	}
	if s.users == nil {
		return ""
	}
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Warn("ApplicationService", "lookup employee %s: %v", email, err)
		}
		return ""
	}
	return u.Name
}

func (s *applicationService) GetByEmployeeEmail(ctx context.Context, email string) ([]dtos.ApplicationDTO, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: employee email is required", ErrValidation)
	}
	apps, err := s.apps.ListByEmployeeEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list applications for employee: %w", err)
	}
	return toApplicationDTOs(apps), nil
}

func (s *applicationService) GetByRecruiterEmail(ctx context.Context, email string) ([]dtos.ApplicationDTO, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: recruiter email is required", ErrValidation)
	}
	apps, err := s.apps.ListByRecruiterEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list applications for recruiter: %w", err)
	}
	return toApplicationDTOs(apps), nil
}

func (s *applicationService) GetByJobID(ctx context.Context, jobID int64) ([]dtos.ApplicationDTO, error) {
	if jobID <= 0 {
		return nil, fmt.Errorf("%w: jobId must be a positive integer", ErrValidation)
	}
	apps, err := s.apps.ListByJobID(ctx, uint(jobID))
	if err != nil {
		return nil, fmt.Errorf("list applications for job %d: %w", jobID, err)
	}
	return toApplicationDTOs(apps), nil
}

func (s *applicationService) UpdateApplicationStatus(ctx context.Context, dto dtos.UpdateApplicationStatusDTO) error {
	if dto.ApplicationID == 0 {
		return fmt.Errorf("%w: applicationId is required", ErrValidation)
	}
	status := models.ApplicationStatus(strings.ToUpper(strings.TrimSpace(string(dto.Status))))
	if !status.Valid() {
		return fmt.Errorf("%w: status must be PENDING, ACCEPTED or REJECTED", ErrValidation)
	}

	app, err := s.apps.GetByID(ctx, dto.ApplicationID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: application %d", ErrNotFound, dto.ApplicationID)
	}
	if err != nil {
		return fmt.Errorf("load application %d: %w", dto.ApplicationID, err)
	}

	if err := s.apps.UpdateStatus(ctx, app.ID, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: application %d", ErrNotFound, dto.ApplicationID)
		}
		return fmt.Errorf("update application %d: %w", app.ID, err)
	}
	logger.Info("ApplicationService", "application %d: %s -> %s", app.ID, app.Status, status)

	s.publish(events.NewApplicationEvent(events.ApplicationStatusChanged,
		app.ID, app.JobPostID, app.EmployeeEmail, app.RecruiterEmail, string(status)))
	s.notify(statusChangedNotification(app.EmployeeEmail, app.JobTitle, app.CompanyName, string(status)))
	return nil
}

func (s *applicationService) publish(event events.ApplicationEvent) {
	if s.publisher == nil {
		return
	}
	s.enqueue(worker.Job{
		ID: "event-" + event.EventID,
		Task: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, backgroundTimeout)
			defer cancel()
			return s.publisher.Publish(ctx, event)
		},
	})
}

func (s *applicationService) notify(n Notification) {
	if s.notifier == nil || n.To == "" {
		return
	}
	s.enqueue(worker.Job{
		ID: "notify-" + n.To,
		Task: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, backgroundTimeout)
			defer cancel()
			return s.notifier.Send(ctx, n)
		},
		RetryOn: IsRetryableSendError,
	})
}

func (s *applicationService) enqueue(job worker.Job) {
	if s.background == nil {
		return
	}
	if err := s.background.Submit(job); err != nil {
		logger.Error("ApplicationService", "drop background job "+job.ID, err)
	}
}

func toApplicationDTOs(apps []models.Application) []dtos.ApplicationDTO {
	out := make([]dtos.ApplicationDTO, 0, len(apps))
	for _, a := range apps {
		out = append(out, dtos.NewApplicationDTO(a))
	}
	return out
}
