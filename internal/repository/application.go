package repository

import (
	"context"
	"errors"

	"github.com/justsurfingit/job-platform/internal/models"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(ctx context.Context, a *models.Application) error
	GetByID(ctx context.Context, id uint) (models.Application, error)
	ListByEmployeeEmail(ctx context.Context, email string) ([]models.Application, error)
	ListByRecruiterEmail(ctx context.Context, email string) ([]models.Application, error)
	ListByJobID(ctx context.Context, jobID uint) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id uint, status models.ApplicationStatus) error
	Count(ctx context.Context) (int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, a *models.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *applicationRepository) GetByID(ctx context.Context, id uint) (models.Application, error) {
	var a models.Application
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Application{}, ErrNotFound
	}
	return a, err
}

func (r *applicationRepository) ListByEmployeeEmail(ctx context.Context, email string) ([]models.Application, error) {
	return r.list(ctx, "employee_email = ?", email)
}

func (r *applicationRepository) ListByRecruiterEmail(ctx context.Context, email string) ([]models.Application, error) {
	return r.list(ctx, "recruiter_email = ?", email)
}

func (r *applicationRepository) ListByJobID(ctx context.Context, jobID uint) ([]models.Application, error) {
	return r.list(ctx, "job_post_id = ?", jobID)
}

func (r *applicationRepository) list(ctx context.Context, cond string, arg interface{}) ([]models.Application, error) {
	apps := []models.Application{}
	err := r.db.WithContext(ctx).
		Where(cond, arg).
		Order("applied_date DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id uint, status models.ApplicationStatus) error {
	res := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *applicationRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Application{}).Count(&n).Error
	return n, err
}
