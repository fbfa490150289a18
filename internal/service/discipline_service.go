package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/secretaria-online/secretaria-api/internal/model"
	"github.com/secretaria-online/secretaria-api/internal/repository"
)

type DisciplineService struct {
	store repository.Store
}

func NewDisciplineService(store repository.Store) *DisciplineService {
	return &DisciplineService{store: store}
}

type DisciplineInput struct {
	Name          string
	Code          string
	WorkloadHours int
}

func (in DisciplineInput) validate() error {
	v := &validation{}
	v.require("name", in.Name)
	v.require("code", in.Code)
	if in.WorkloadHours < 0 {
		v.add("workload_hours", "must not be negative")
	}
	return v.err()
}

func (s *DisciplineService) Create(ctx context.Context, input DisciplineInput) (*model.Discipline, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	discipline := &model.Discipline{
		Name:          input.Name,
		Code:          input.Code,
		WorkloadHours: input.WorkloadHours,
	}
	if err := s.store.Disciplines().Create(ctx, discipline); err != nil {
		return nil, err
	}
	return discipline, nil
}

func (s *DisciplineService) Get(ctx context.Context, id uuid.UUID) (*model.Discipline, error) {
	discipline, err := s.store.Disciplines().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return discipline, nil
}

func (s *DisciplineService) List(ctx context.Context, offset, limit int) ([]model.Discipline, int64, error) {
	return s.store.Disciplines().List(ctx, offset, limit)
}

func (s *DisciplineService) Update(ctx context.Context, id uuid.UUID, input DisciplineInput) (*model.Discipline, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	discipline, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	discipline.Name = input.Name
	discipline.Code = input.Code
	discipline.WorkloadHours = input.WorkloadHours

	if err := s.store.Disciplines().Update(ctx, discipline); err != nil {
		return nil, err
	}
	return discipline, nil
}

func (s *DisciplineService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Disciplines().Delete(ctx, id)
}
