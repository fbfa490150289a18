package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/secretaria-online/secretaria-api/internal/model"
)

type ClassRepository interface {
	Create(ctx context.Context, class *model.Class) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Class, error)
	List(ctx context.Context, semester, year, offset, limit int) ([]model.Class, int64, error)
	ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]model.Class, error)
	Update(ctx context.Context, class *model.Class) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Create(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Class, error) {
	var class model.Class
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Discipline").
		Preload("Teacher").
		First(&class, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) List(ctx context.Context, semester, year, offset, limit int) ([]model.Class, int64, error) {
	var classes []model.Class
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Class{})
	if semester > 0 {
		query = query.Where("semester = ?", semester)
	}
	if year > 0 {
		query = query.Where("year = ?", year)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Course").Preload("Discipline").Preload("Teacher").
		Offset(offset).Limit(limit).
		Order("year DESC, semester DESC").
		Find(&classes).Error
	if err != nil {
		return nil, 0, err
	}
	return classes, total, nil
}

func (r *classRepository) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]model.Class, error) {
	var classes []model.Class
	err := r.db.WithContext(ctx).
		Preload("Course").Preload("Discipline").
		Where("teacher_id = ?", teacherID).
		Order("year DESC, semester DESC").
		Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *classRepository) Update(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Save(class).Error
}

func (r *classRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Class{}, "id = ?", id).Error
}
