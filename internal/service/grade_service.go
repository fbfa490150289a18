package service

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/secretaria-online/secretaria-api/internal/model"
	"github.com/secretaria-online/secretaria-api/internal/repository"
)

var validConcepts = map[string]bool{
	"A": true, "B": true, "C": true, "D": true, "F": true,
}

type GradeService struct {
	store repository.Store
}

func NewGradeService(store repository.Store) *GradeService {
	return &GradeService{store: store}
}

type GradeInput struct {
	EvaluationID uuid.UUID
	StudentID    uuid.UUID
	Score        *float64
	Concept      *string
}

func (in GradeInput) validate() error {
	v := &validation{}
	if in.EvaluationID == uuid.Nil {
		v.add("evaluation_id", "is required")
	}
	if in.StudentID == uuid.Nil {
		v.add("student_id", "is required")
	}
	switch {
	case in.Score == nil && in.Concept == nil:
		v.add("score", "either score or concept is required")
	case in.Score != nil && in.Concept != nil:
		v.add("score", "score and concept are mutually exclusive")
	case in.Score != nil:
		score := *in.Score
		if score < 0 || score > 10 {
			v.add("score", "must be between 0 and 10")
		}
		// Two-decimal precision. Compared with a tolerance since the
		// hundredths product is not exact in binary floating point.
		if math.Abs(score*100-math.Round(score*100)) > 1e-9 {
			v.add("score", "must have at most two decimals")
		}
	case in.Concept != nil:
		if !validConcepts[*in.Concept] {
			v.add("concept", "must be one of A, B, C, D, F")
		}
	}
	return v.err()
}

func (s *GradeService) Create(ctx context.Context, input GradeInput) (*model.Grade, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	if _, err := s.store.Evaluations().GetByID(ctx, input.EvaluationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := s.store.Grades().GetByEvaluationAndStudent(ctx, input.EvaluationID, input.StudentID); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	grade := &model.Grade{
		EvaluationID: input.EvaluationID,
		StudentID:    input.StudentID,
		Score:        input.Score,
		Concept:      input.Concept,
	}
	if err := s.store.Grades().Create(ctx, grade); err != nil {
		return nil, err
	}
	return grade, nil
}

func (s *GradeService) Get(ctx context.Context, id uuid.UUID) (*model.Grade, error) {
	grade, err := s.store.Grades().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return grade, nil
}

func (s *GradeService) ListByEvaluation(ctx context.Context, evaluationID uuid.UUID) ([]model.Grade, error) {
	return s.store.Grades().ListByEvaluation(ctx, evaluationID)
}

func (s *GradeService) Update(ctx context.Context, id uuid.UUID, input GradeInput) (*model.Grade, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	grade, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	grade.Score = input.Score
	grade.Concept = input.Concept

	if err := s.store.Grades().Update(ctx, grade); err != nil {
		return nil, err
	}
	return grade, nil
}

func (s *GradeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Grades().Delete(ctx, id)
}
