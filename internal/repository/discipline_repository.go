package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/secretaria-online/secretaria-api/internal/model"
)

type DisciplineRepository interface {
	Create(ctx context.Context, discipline *model.Discipline) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Discipline, error)
	List(ctx context.Context, offset, limit int) ([]model.Discipline, int64, error)
	Update(ctx context.Context, discipline *model.Discipline) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type disciplineRepository struct {
	db *gorm.DB
}

func NewDisciplineRepository(db *gorm.DB) DisciplineRepository {
	return &disciplineRepository{db: db}
}

func (r *disciplineRepository) Create(ctx context.Context, discipline *model.Discipline) error {
	return r.db.WithContext(ctx).Create(discipline).Error
}

func (r *disciplineRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Discipline, error) {
	var discipline model.Discipline
	if err := r.db.WithContext(ctx).First(&discipline, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &discipline, nil
}

func (r *disciplineRepository) List(ctx context.Context, offset, limit int) ([]model.Discipline, int64, error) {
	var disciplines []model.Discipline
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Discipline{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Offset(offset).Limit(limit).Order("name ASC").Find(&disciplines).Error; err != nil {
		return nil, 0, err
	}
	return disciplines, total, nil
}

func (r *disciplineRepository) Update(ctx context.Context, discipline *model.Discipline) error {
	return r.db.WithContext(ctx).Save(discipline).Error
}

func (r *disciplineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Discipline{}, "id = ?", id).Error
}
