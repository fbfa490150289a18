package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/secretaria-online/secretaria-api/internal/model"
)

type GradeRepository interface {
	Create(ctx context.Context, grade *model.Grade) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Grade, error)
	GetByEvaluationAndStudent(ctx context.Context, evaluationID, studentID uuid.UUID) (*model.Grade, error)
	ListByEvaluation(ctx context.Context, evaluationID uuid.UUID) ([]model.Grade, error)
	ListByClass(ctx context.Context, classID uuid.UUID) ([]model.Grade, error)
	Update(ctx context.Context, grade *model.Grade) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type gradeRepository struct {
	db *gorm.DB
}

func NewGradeRepository(db *gorm.DB) GradeRepository {
	return &gradeRepository{db: db}
}

func (r *gradeRepository) Create(ctx context.Context, grade *model.Grade) error {
	return r.db.WithContext(ctx).Create(grade).Error
}

func (r *gradeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Grade, error) {
	var grade model.Grade
	if err := r.db.WithContext(ctx).Preload("Evaluation").First(&grade, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &grade, nil
}

func (r *gradeRepository) GetByEvaluationAndStudent(ctx context.Context, evaluationID, studentID uuid.UUID) (*model.Grade, error) {
	var grade model.Grade
	err := r.db.WithContext(ctx).
		First(&grade, "evaluation_id = ? AND student_id = ?", evaluationID, studentID).Error
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

func (r *gradeRepository) ListByEvaluation(ctx context.Context, evaluationID uuid.UUID) ([]model.Grade, error) {
	var grades []model.Grade
	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("evaluation_id = ?", evaluationID).
		Find(&grades).Error
	if err != nil {
		return nil, err
	}
	return grades, nil
}

func (r *gradeRepository) ListByClass(ctx context.Context, classID uuid.UUID) ([]model.Grade, error) {
	var grades []model.Grade
	err := r.db.WithContext(ctx).
		Joins("JOIN evaluations ON evaluations.id = grades.evaluation_id").
		Where("evaluations.class_id = ? AND evaluations.deleted_at IS NULL", classID).
		Find(&grades).Error
	if err != nil {
		return nil, err
	}
	return grades, nil
}

func (r *gradeRepository) Update(ctx context.Context, grade *model.Grade) error {
	return r.db.WithContext(ctx).Save(grade).Error
}

func (r *gradeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Grade{}, "id = ?", id).Error
}
