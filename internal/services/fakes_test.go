package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/justsurfingit/job-platform/internal/events"
	"github.com/justsurfingit/job-platform/internal/models"
	"github.com/justsurfingit/job-platform/internal/repository"
	"github.com/justsurfingit/job-platform/internal/worker"
)

type memoryApplications struct {
	mu   sync.Mutex
	apps map[uint]models.Application
	err  error
}

func newMemoryApplications() *memoryApplications {
	return &memoryApplications{apps: map[uint]models.Application{}}
}

func (m *memoryApplications) Create(_ context.Context, a *models.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	a.ID = uint(len(m.apps) + 1)
	m.apps[a.ID] = *a
	return nil
}

func (m *memoryApplications) GetByID(_ context.Context, id uint) (models.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.apps[id]
	if !ok {
		return models.Application{}, repository.ErrNotFound
	}
	return a, nil
}

func (m *memoryApplications) list(match func(models.Application) bool) ([]models.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []models.Application{}
	for _, a := range m.apps {
		if match(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedDate.After(out[j].AppliedDate) })
	return out, nil
}

func (m *memoryApplications) ListByEmployeeEmail(_ context.Context, email string) ([]models.Application, error) {
	return m.list(func(a models.Application) bool { return a.EmployeeEmail == email })
}

func (m *memoryApplications) ListByRecruiterEmail(_ context.Context, email string) ([]models.Application, error) {
	return m.list(func(a models.Application) bool { return a.RecruiterEmail == email })
}

func (m *memoryApplications) ListByJobID(_ context.Context, jobID uint) ([]models.Application, error) {
	return m.list(func(a models.Application) bool { return a.JobPostID == jobID })
}

func (m *memoryApplications) UpdateStatus(_ context.Context, id uint, status models.ApplicationStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.apps[id]
	if !ok {
		return repository.ErrNotFound
	}
	a.Status = status
	m.apps[id] = a
	return nil
}

func (m *memoryApplications) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.apps)), nil
}

type memoryJobPosts struct {
	mu   sync.Mutex
	jobs []models.JobPost
}

func (m *memoryJobPosts) Create(_ context.Context, j *models.JobPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j.ID = uint(len(m.jobs) + 1)
	m.jobs = append(m.jobs, *j)
	return nil
}

func (m *memoryJobPosts) GetByID(_ context.Context, id uint) (models.JobPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, j := range m.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return models.JobPost{}, repository.ErrNotFound
}

func (m *memoryJobPosts) List(context.Context) ([]models.JobPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.JobPost{}, m.jobs...), nil
}

func (m *memoryJobPosts) Search(_ context.Context, term string) ([]models.JobPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	term = strings.ToLower(term)
	out := []models.JobPost{}
	for _, j := range m.jobs {
		if strings.Contains(strings.ToLower(j.Title), term) || strings.Contains(strings.ToLower(j.CompanyName), term) {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *memoryJobPosts) ListByRecruiterEmail(_ context.Context, email string) ([]models.JobPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.JobPost{}
	for _, j := range m.jobs {
		if j.RecruiterEmail == email {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *memoryJobPosts) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.jobs)), nil
}

type memoryUsers struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: map[string]models.User{}}
}

func (m *memoryUsers) Create(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.Email]; ok {
		return repository.ErrDuplicate
	}
	u.ID = uint(len(m.users) + 1)
	m.users[u.Email] = *u
	return nil
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (m *memoryUsers) List(context.Context) ([]models.User, error) {
	return m.filter(func(models.User) bool { return true }), nil
}

func (m *memoryUsers) ListByRole(_ context.Context, role models.Role) ([]models.User, error) {
	return m.filter(func(u models.User) bool { return u.Role == role }), nil
}

func (m *memoryUsers) filter(match func(models.User) bool) []models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.User{}
	for _, u := range m.users {
		if match(u) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memoryUsers) Update(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.Email]; !ok {
		return repository.ErrNotFound
	}
	m.users[u.Email] = *u
	return nil
}

func (m *memoryUsers) SetActive(_ context.Context, email string, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return repository.ErrNotFound
	}
	u.IsActive = active
	m.users[email] = u
	return nil
}

func (m *memoryUsers) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

func (m *memoryUsers) CountActive(context.Context) (int64, error) {
	return int64(len(m.filter(func(u models.User) bool { return u.IsActive }))), nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.ApplicationEvent
}

func (p *recordingPublisher) Publish(_ context.Context, e events.ApplicationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type recordingNotifier struct {
	mu   sync.Mutex
	sent []Notification
}

func (n *recordingNotifier) Send(_ context.Context, notif Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notif)
	return nil
}

// inlineSubmitter runs jobs on the caller's goroutine.
type inlineSubmitter struct {
	ids []string
}

func (s *inlineSubmitter) Submit(job worker.Job) error {
	s.ids = append(s.ids, job.ID)
	return job.Task(context.Background())
}

// memoryLimiter mirrors cache.LoginLimiter without redis.
type memoryLimiter struct {
	failures map[string]int
	max      int
}

func (l *memoryLimiter) Blocked(_ context.Context, email string) (bool, error) {
	return l.failures[email] >= l.max, nil
}

func (l *memoryLimiter) RecordFailure(_ context.Context, email string) error {
	l.failures[email]++
	return nil
}

func (l *memoryLimiter) Reset(_ context.Context, email string) error {
	delete(l.failures, email)
	return nil
}
