package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/justsurfingit/job-platform/internal/models"
	"gorm.io/gorm"
)

type JobPostRepository interface {
	Create(ctx context.Context, j *models.JobPost) error
	GetByID(ctx context.Context, id uint) (models.JobPost, error)
	List(ctx context.Context) ([]models.JobPost, error)
	Search(ctx context.Context, term string) ([]models.JobPost, error)
	ListByRecruiterEmail(ctx context.Context, email string) ([]models.JobPost, error)
	Count(ctx context.Context) (int64, error)
}

type jobPostRepository struct {
	db *gorm.DB
}

func NewJobPostRepository(db *gorm.DB) JobPostRepository {
	return &jobPostRepository{db: db}
}

func (r *jobPostRepository) Create(ctx context.Context, j *models.JobPost) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *jobPostRepository) GetByID(ctx context.Context, id uint) (models.JobPost, error) {
	var j models.JobPost
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&j).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.JobPost{}, ErrNotFound
	}
	return j, err
}

func (r *jobPostRepository) List(ctx context.Context) ([]models.JobPost, error) {
	jobs := []models.JobPost{}
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Search matches the term against title and company, case-insensitively.
func (r *jobPostRepository) Search(ctx context.Context, term string) ([]models.JobPost, error) {
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	jobs := []models.JobPost{}
	err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(company_name) LIKE ?", pattern, pattern).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobPostRepository) ListByRecruiterEmail(ctx context.Context, email string) ([]models.JobPost, error) {
	jobs := []models.JobPost{}
	err := r.db.WithContext(ctx).
		Where("recruiter_email = ?", email).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *jobPostRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.JobPost{}).Count(&n).Error
	return n, err
}
