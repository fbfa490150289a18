package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/secretaria-online/secretaria-api/internal/model"
)

type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Student, error)
	GetByCPF(ctx context.Context, cpf string) (*model.Student, error)
	List(ctx context.Context, offset, limit int) ([]model.Student, int64, error)
	ListActiveByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).First(&student, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).First(&student, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) GetByCPF(ctx context.Context, cpf string) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).First(&student, "cpf = ?", cpf).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) List(ctx context.Context, offset, limit int) ([]model.Student, int64, error) {
	var students []model.Student
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Student{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Offset(offset).Limit(limit).Order("name ASC").Find(&students).Error; err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

func (r *studentRepository) ListActiveByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).
		Joins("JOIN enrollments ON enrollments.student_id = students.id").
		Where("enrollments.course_id = ? AND enrollments.status = ? AND enrollments.deleted_at IS NULL",
			courseID, model.EnrollmentStatusActive).
		Order("students.name ASC").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *studentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Student{}, "id = ?", id).Error
}
