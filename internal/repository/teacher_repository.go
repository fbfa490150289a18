package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/secretaria-online/secretaria-api/internal/model"
)

type TeacherRepository interface {
	Create(ctx context.Context, teacher *model.Teacher) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Teacher, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Teacher, error)
	List(ctx context.Context, offset, limit int) ([]model.Teacher, int64, error)
	Update(ctx context.Context, teacher *model.Teacher) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type teacherRepository struct {
	db *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) TeacherRepository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) Create(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Create(teacher).Error
}

func (r *teacherRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Teacher, error) {
	var teacher model.Teacher
	if err := r.db.WithContext(ctx).First(&teacher, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Teacher, error) {
	var teacher model.Teacher
	if err := r.db.WithContext(ctx).First(&teacher, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepository) List(ctx context.Context, offset, limit int) ([]model.Teacher, int64, error) {
	var teachers []model.Teacher
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Teacher{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Offset(offset).Limit(limit).Order("name ASC").Find(&teachers).Error; err != nil {
		return nil, 0, err
	}
	return teachers, total, nil
}

func (r *teacherRepository) Update(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Save(teacher).Error
}

func (r *teacherRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Teacher{}, "id = ?", id).Error
}
