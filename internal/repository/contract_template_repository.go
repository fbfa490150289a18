package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/secretaria-online/secretaria-api/internal/model"
)

type ContractTemplateRepository interface {
	Create(ctx context.Context, template *model.ContractTemplate) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ContractTemplate, error)
	// GetActive returns the template used for new contracts.
	GetActive(ctx context.Context) (*model.ContractTemplate, error)
	List(ctx context.Context) ([]model.ContractTemplate, error)
	Update(ctx context.Context, template *model.ContractTemplate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type contractTemplateRepository struct {
	db *gorm.DB
}

func NewContractTemplateRepository(db *gorm.DB) ContractTemplateRepository {
	return &contractTemplateRepository{db: db}
}

func (r *contractTemplateRepository) Create(ctx context.Context, template *model.ContractTemplate) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *contractTemplateRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ContractTemplate, error) {
	var template model.ContractTemplate
	if err := r.db.WithContext(ctx).First(&template, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *contractTemplateRepository) GetActive(ctx context.Context) (*model.ContractTemplate, error) {
	var template model.ContractTemplate
	err := r.db.WithContext(ctx).
		Where("active = TRUE").
		Order("updated_at DESC").
		First(&template).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *contractTemplateRepository) List(ctx context.Context) ([]model.ContractTemplate, error) {
	var templates []model.ContractTemplate
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *contractTemplateRepository) Update(ctx context.Context, template *model.ContractTemplate) error {
	return r.db.WithContext(ctx).Save(template).Error
}

func (r *contractTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ContractTemplate{}, "id = ?", id).Error
}
