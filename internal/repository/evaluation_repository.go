package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/secretaria-online/secretaria-api/internal/model"
)

type EvaluationRepository interface {
	Create(ctx context.Context, evaluation *model.Evaluation) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Evaluation, error)
	ListByClass(ctx context.Context, classID uuid.UUID) ([]model.Evaluation, error)
	Update(ctx context.Context, evaluation *model.Evaluation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type evaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepository{db: db}
}

func (r *evaluationRepository) Create(ctx context.Context, evaluation *model.Evaluation) error {
	return r.db.WithContext(ctx).Create(evaluation).Error
}

func (r *evaluationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Evaluation, error) {
	var evaluation model.Evaluation
	if err := r.db.WithContext(ctx).First(&evaluation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &evaluation, nil
}

func (r *evaluationRepository) ListByClass(ctx context.Context, classID uuid.UUID) ([]model.Evaluation, error) {
	var evaluations []model.Evaluation
	err := r.db.WithContext(ctx).
		Where("class_id = ?", classID).
		Order("applied_at ASC NULLS LAST, created_at ASC").
		Find(&evaluations).Error
	if err != nil {
		return nil, err
	}
	return evaluations, nil
}

func (r *evaluationRepository) Update(ctx context.Context, evaluation *model.Evaluation) error {
	return r.db.WithContext(ctx).Save(evaluation).Error
}

func (r *evaluationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Evaluation{}, "id = ?", id).Error
}
