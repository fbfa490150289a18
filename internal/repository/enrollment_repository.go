package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/secretaria-online/secretaria-api/internal/model"
)

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *model.Enrollment) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Enrollment, error)
	List(ctx context.Context, status model.EnrollmentStatus, offset, limit int) ([]model.Enrollment, int64, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Enrollment, error)
	ListPendingByTerm(ctx context.Context, semester, year int) ([]model.Enrollment, error)
	HasOpenEnrollment(ctx context.Context, studentID, courseID uuid.UUID) (bool, error)
	Update(ctx context.Context, enrollment *model.Enrollment) error
	// ReenrollActive moves every active enrollment to pending, tagged with
	// the new term. Returns the number of rows affected.
	ReenrollActive(ctx context.Context, semester, year int) (int64, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Create(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *enrollmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Course").
		First(&enrollment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) List(ctx context.Context, status model.EnrollmentStatus, offset, limit int) ([]model.Enrollment, int64, error) {
	var enrollments []model.Enrollment
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Enrollment{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Student").Preload("Course").
		Offset(offset).Limit(limit).
		Order("enrolled_at DESC").
		Find(&enrollments).Error
	if err != nil {
		return nil, 0, err
	}
	return enrollments, total, nil
}

func (r *enrollmentRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("student_id = ?", studentID).
		Order("enrolled_at DESC").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *enrollmentRepository) ListPendingByTerm(ctx context.Context, semester, year int) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Course").
		Where("status = ? AND semester = ? AND year = ?",
			model.EnrollmentStatusPending, semester, year).
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *enrollmentRepository) HasOpenEnrollment(ctx context.Context, studentID, courseID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Enrollment{}).
		Where("student_id = ? AND course_id = ? AND status IN ?",
			studentID, courseID,
			[]model.EnrollmentStatus{model.EnrollmentStatusPending, model.EnrollmentStatusActive}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *enrollmentRepository) Update(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Save(enrollment).Error
}

func (r *enrollmentRepository) ReenrollActive(ctx context.Context, semester, year int) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Enrollment{}).
		Where("status = ?", model.EnrollmentStatusActive).
		Updates(map[string]interface{}{
			"status":   model.EnrollmentStatusPending,
			"semester": semester,
			"year":     year,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
