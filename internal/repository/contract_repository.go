package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/secretaria-online/secretaria-api/internal/model"
)

type ContractRepository interface {
	Create(ctx context.Context, contract *model.Contract) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Contract, error)
	GetByEnrollment(ctx context.Context, enrollmentID uuid.UUID) (*model.Contract, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Contract, error)
	ListGenerated(ctx context.Context) ([]model.Contract, error)
	Update(ctx context.Context, contract *model.Contract) error
}

type contractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) Create(ctx context.Context, contract *model.Contract) error {
	return r.db.WithContext(ctx).Create(contract).Error
}

func (r *contractRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	var contract model.Contract
	err := r.db.WithContext(ctx).
		Preload("Template").
		Preload("Enrollment").
		First(&contract, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *contractRepository) GetByEnrollment(ctx context.Context, enrollmentID uuid.UUID) (*model.Contract, error) {
	var contract model.Contract
	err := r.db.WithContext(ctx).
		First(&contract, "enrollment_id = ?", enrollmentID).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *contractRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *contractRepository) ListGenerated(ctx context.Context) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.db.WithContext(ctx).
		Where("file_path IS NOT NULL").
		Order("created_at ASC").
		Find(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *contractRepository) Update(ctx context.Context, contract *model.Contract) error {
	return r.db.WithContext(ctx).Save(contract).Error
}
