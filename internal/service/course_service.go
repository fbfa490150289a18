package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/secretaria-online/secretaria-api/internal/model"
	"github.com/secretaria-online/secretaria-api/internal/repository"
)

type CourseService struct {
	store repository.Store
}

func NewCourseService(store repository.Store) *CourseService {
	return &CourseService{store: store}
}

type CourseInput struct {
	Name              string
	Description       string
	DurationSemesters int
	Modality          string
	MonthlyFee        float64
}

func (in CourseInput) validate() error {
	v := &validation{}
	v.require("name", in.Name)
	if in.DurationSemesters < 0 {
		v.add("duration_semesters", "must not be negative")
	}
	if in.MonthlyFee < 0 {
		v.add("monthly_fee", "must not be negative")
	}
	return v.err()
}

func (s *CourseService) Create(ctx context.Context, input CourseInput) (*model.Course, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	course := &model.Course{
		Name:              input.Name,
		Description:       input.Description,
		DurationSemesters: input.DurationSemesters,
		Modality:          input.Modality,
		MonthlyFee:        input.MonthlyFee,
	}
	if err := s.store.Courses().Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Get(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	course, err := s.store.Courses().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return course, nil
}

func (s *CourseService) List(ctx context.Context, offset, limit int) ([]model.Course, int64, error) {
	return s.store.Courses().List(ctx, offset, limit)
}

func (s *CourseService) Update(ctx context.Context, id uuid.UUID, input CourseInput) (*model.Course, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	course, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	course.Name = input.Name
	course.Description = input.Description
	course.DurationSemesters = input.DurationSemesters
	course.Modality = input.Modality
	course.MonthlyFee = input.MonthlyFee

	if err := s.store.Courses().Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Courses().Delete(ctx, id)
}
