package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/justsurfingit/job-platform/internal/dtos"
	"github.com/justsurfingit/job-platform/internal/events"
	"github.com/justsurfingit/job-platform/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applicationFixture struct {
	svc       *applicationService
	apps      *memoryApplications
	jobs      *memoryJobPosts
	users     *memoryUsers
	publisher *recordingPublisher
	notifier  *recordingNotifier
	submitter *inlineSubmitter
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()
	f := &applicationFixture{
		apps:      newMemoryApplications(),
		jobs:      &memoryJobPosts{},
		users:     newMemoryUsers(),
		publisher: &recordingPublisher{},
		notifier:  &recordingNotifier{},
		submitter: &inlineSubmitter{},
	}
	f.svc = NewApplicationService(f.apps, f.jobs, f.users, f.publisher, f.notifier, f.submitter).(*applicationService)

	ctx := context.Background()
	require.NoError(t, f.jobs.Create(ctx, &models.JobPost{Title: "Backend Engineer", CompanyName: "Corp", RecruiterEmail: "r@corp.com"}))
	require.NoError(t, f.jobs.Create(ctx, &models.JobPost{Title: "Designer", CompanyName: "Studio", RecruiterEmail: "s@studio.com"}))
	return f
}

func TestApplyJobDenormalisesJob(t *testing.T) {
	f := newApplicationFixture(t)
	applied := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return applied }
	require.NoError(t, f.users.Create(context.Background(), &models.User{Name: "Ada", Email: "a@x.com"}))

	err := f.svc.ApplyJob(context.Background(), dtos.ApplicationDTO{EmployeeEmail: "a@x.com", JobID: 1})
	require.NoError(t, err)

	app, err := f.apps.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, app.Status)
	assert.Equal(t, "Ada", app.EmployeeName)
	assert.Equal(t, "Backend Engineer", app.JobTitle)
	assert.Equal(t, "Corp", app.CompanyName)
	assert.Equal(t, "r@corp.com", app.RecruiterEmail)
	assert.Equal(t, applied, app.AppliedDate)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, events.ApplicationSubmitted, f.publisher.events[0].Type)
	assert.EqualValues(t, 1, f.publisher.events[0].JobID)
	assert.Empty(t, f.notifier.sent)
}

func TestApplyJobErrors(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	err := f.svc.ApplyJob(ctx, dtos.ApplicationDTO{EmployeeEmail: "a@x.com", JobID: 99})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, f.svc.ApplyJob(ctx, dtos.ApplicationDTO{JobID: 1}), ErrValidation)
	assert.ErrorIs(t, f.svc.ApplyJob(ctx, dtos.ApplicationDTO{EmployeeEmail: "a@x.com"}), ErrValidation)

	f.apps.err = errors.New("db down")
	err = f.svc.ApplyJob(ctx, dtos.ApplicationDTO{EmployeeEmail: "a@x.com", JobID: 1})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.Empty(t, f.publisher.events)
}

func TestListsFilterByOwner(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	f.svc.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Hour)
	}

	require.NoError(t, f.svc.ApplyJob(ctx, dtos.ApplicationDTO{EmployeeEmail: "a@x.com", JobID: 1}))
	require.NoError(t, f.svc.ApplyJob(ctx, dtos.ApplicationDTO{EmployeeEmail: "b@x.com", JobID: 1}))
	require.NoError(t, f.svc.ApplyJob(ctx, dtos.ApplicationDTO{EmployeeEmail: "a@x.com", JobID: 2}))

	mine, err := f.svc.GetByEmployeeEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, a := range mine {
		assert.Equal(t, "a@x.com", a.EmployeeEmail)
	}
	assert.EqualValues(t, 2, mine[0].JobID, "newest first")

	recruiter, err := f.svc.GetByRecruiterEmail(ctx, "r@corp.com")
	require.NoError(t, err)
	assert.Len(t, recruiter, 2)

	byJob, err := f.svc.GetByJobID(ctx, 2)
	require.NoError(t, err)
	require.Len(t, byJob, 1)
	assert.Equal(t, "Studio", byJob[0].CompanyName)

	none, err := f.svc.GetByEmployeeEmail(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	_, err = f.svc.GetByJobID(ctx, 0)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = f.svc.GetByEmployeeEmail(ctx, " ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateApplicationStatus(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()
	require.NoError(t, f.svc.ApplyJob(ctx, dtos.ApplicationDTO{EmployeeEmail: "a@x.com", JobID: 1}))

	err := f.svc.UpdateApplicationStatus(ctx, dtos.NewUpdateApplicationStatusDTO(1, "accepted"))
	require.NoError(t, err)

	app, err := f.apps.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, app.Status)

	require.Len(t, f.publisher.events, 2)
	assert.Equal(t, events.ApplicationStatusChanged, f.publisher.events[1].Type)
	assert.Equal(t, "ACCEPTED", f.publisher.events[1].Status)

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "a@x.com", f.notifier.sent[0].To)
	assert.Contains(t, f.notifier.sent[0].Body, "ACCEPTED")
	assert.Contains(t, f.notifier.sent[0].Subject, "Backend Engineer")
}

func TestUpdateApplicationStatusErrors(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()
	require.NoError(t, f.svc.ApplyJob(ctx, dtos.ApplicationDTO{EmployeeEmail: "a@x.com", JobID: 1}))

	assert.ErrorIs(t, f.svc.UpdateApplicationStatus(ctx, dtos.NewUpdateApplicationStatusDTO(1, "HIRED")), ErrValidation)
	assert.ErrorIs(t, f.svc.UpdateApplicationStatus(ctx, dtos.NewUpdateApplicationStatusDTO(0, models.StatusAccepted)), ErrValidation)
	assert.ErrorIs(t, f.svc.UpdateApplicationStatus(ctx, dtos.NewUpdateApplicationStatusDTO(42, models.StatusAccepted)), ErrNotFound)
	assert.Empty(t, f.notifier.sent)
}

func TestApplicationServiceWithoutBackground(t *testing.T) {
	apps := newMemoryApplications()
	jobs := &memoryJobPosts{}
	require.NoError(t, jobs.Create(context.Background(), &models.JobPost{Title: "SRE", CompanyName: "Corp"}))
	svc := NewApplicationService(apps, jobs, nil, nil, nil, nil)

	require.NoError(t, svc.ApplyJob(context.Background(), dtos.ApplicationDTO{EmployeeEmail: "a@x.com", EmployeeName: "Ada", RecruiterEmail: "r@corp.com", JobID: 1}))
	app, err := apps.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ada", app.EmployeeName)
	assert.Equal(t, "r@corp.com", app.RecruiterEmail)
	require.NoError(t, svc.UpdateApplicationStatus(context.Background(), dtos.NewUpdateApplicationStatusDTO(1, models.StatusRejected)))
}

func TestEmailsAreMatchedCaseInsensitively(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.ApplyJob(ctx, dtos.ApplicationDTO{EmployeeEmail: " A@X.com ", JobID: 1}))

	mine, err := f.svc.GetByEmployeeEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "a@x.com", mine[0].EmployeeEmail)

	same, err := f.svc.GetByEmployeeEmail(ctx, "A@x.COM")
	require.NoError(t, err)
	assert.Len(t, same, 1)

	recruiter, err := f.svc.GetByRecruiterEmail(ctx, "R@Corp.com")
	require.NoError(t, err)
	assert.Len(t, recruiter, 1)
}
