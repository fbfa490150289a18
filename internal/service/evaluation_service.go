package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/secretaria-online/secretaria-api/internal/model"
	"github.com/secretaria-online/secretaria-api/internal/repository"
)

type EvaluationService struct {
	store repository.Store
}

func NewEvaluationService(store repository.Store) *EvaluationService {
	return &EvaluationService{store: store}
}

type EvaluationInput struct {
	ClassID   uuid.UUID
	Name      string
	Kind      model.EvaluationKind
	Weight    float64
	AppliedAt string
}

func (in EvaluationInput) validate() (*time.Time, error) {
	v := &validation{}
	if in.ClassID == uuid.Nil {
		v.add("class_id", "is required")
	}
	v.require("name", in.Name)
	if !in.Kind.Valid() {
		v.add("kind", "must be exam or assignment")
	}
	if in.Weight <= 0 {
		v.add("weight", "must be positive")
	}

	var appliedAt *time.Time
	if in.AppliedAt != "" {
		parsed, err := time.Parse("2006-01-02", in.AppliedAt)
		if err != nil {
			v.add("applied_at", "must be formatted as YYYY-MM-DD")
		} else {
			appliedAt = &parsed
		}
	}
	if err := v.err(); err != nil {
		return nil, err
	}
	return appliedAt, nil
}

// ensureClassOwnership rejects teachers touching classes they do not teach.
// Admins pass through.
func (s *EvaluationService) ensureClassOwnership(ctx context.Context, principal model.Principal, classID uuid.UUID) error {
	if !principal.IsTeacher() {
		return nil
	}
	teacher, err := s.store.Teachers().GetByUserID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPermissionDenied
		}
		return err
	}
	class, err := s.store.Classes().GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if class.TeacherID != teacher.ID {
		return ErrPermissionDenied
	}
	return nil
}

func (s *EvaluationService) Create(ctx context.Context, principal model.Principal, input EvaluationInput) (*model.Evaluation, error) {
	appliedAt, err := input.validate()
	if err != nil {
		return nil, err
	}
	if err := s.ensureClassOwnership(ctx, principal, input.ClassID); err != nil {
		return nil, err
	}

	evaluation := &model.Evaluation{
		ClassID:   input.ClassID,
		Name:      input.Name,
		Kind:      input.Kind,
		Weight:    input.Weight,
		AppliedAt: appliedAt,
	}
	if err := s.store.Evaluations().Create(ctx, evaluation); err != nil {
		return nil, err
	}
	return evaluation, nil
}

func (s *EvaluationService) Get(ctx context.Context, id uuid.UUID) (*model.Evaluation, error) {
	evaluation, err := s.store.Evaluations().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return evaluation, nil
}

func (s *EvaluationService) ListByClass(ctx context.Context, classID uuid.UUID) ([]model.Evaluation, error) {
	return s.store.Evaluations().ListByClass(ctx, classID)
}

func (s *EvaluationService) Update(ctx context.Context, principal model.Principal, id uuid.UUID, input EvaluationInput) (*model.Evaluation, error) {
	appliedAt, err := input.validate()
	if err != nil {
		return nil, err
	}

	evaluation, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureClassOwnership(ctx, principal, evaluation.ClassID); err != nil {
		return nil, err
	}

	evaluation.Name = input.Name
	evaluation.Kind = input.Kind
	evaluation.Weight = input.Weight
	evaluation.AppliedAt = appliedAt

	if err := s.store.Evaluations().Update(ctx, evaluation); err != nil {
		return nil, err
	}
	return evaluation, nil
}

func (s *EvaluationService) Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	evaluation, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.ensureClassOwnership(ctx, principal, evaluation.ClassID); err != nil {
		return err
	}
	return s.store.Evaluations().Delete(ctx, id)
}
