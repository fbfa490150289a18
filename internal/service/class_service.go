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

type ClassService struct {
	store repository.Store
}

func NewClassService(store repository.Store) *ClassService {
	return &ClassService{store: store}
}

type ClassInput struct {
	CourseID     uuid.UUID
	DisciplineID uuid.UUID
	TeacherID    uuid.UUID
	Semester     int
	Year         int
	Shift        string
	Room         string
}

func (in ClassInput) validate() error {
	v := &validation{}
	if in.CourseID == uuid.Nil {
		v.add("course_id", "is required")
	}
	if in.DisciplineID == uuid.Nil {
		v.add("discipline_id", "is required")
	}
	if in.TeacherID == uuid.Nil {
		v.add("teacher_id", "is required")
	}
	if in.Semester != 1 && in.Semester != 2 {
		v.add("semester", "must be 1 or 2")
	}
	if in.Year < 2000 || in.Year > time.Now().Year()+1 {
		v.add("year", "is out of range")
	}
	return v.err()
}

func (s *ClassService) Create(ctx context.Context, input ClassInput) (*model.Class, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	// Referenced records must exist; collect the misses like field errors.
	v := &validation{}
	if _, err := s.store.Courses().GetByID(ctx, input.CourseID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		v.add("course_id", "course not found")
	}
	if _, err := s.store.Disciplines().GetByID(ctx, input.DisciplineID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		v.add("discipline_id", "discipline not found")
	}
	if _, err := s.store.Teachers().GetByID(ctx, input.TeacherID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		v.add("teacher_id", "teacher not found")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	class := &model.Class{
		CourseID:     input.CourseID,
		DisciplineID: input.DisciplineID,
		TeacherID:    input.TeacherID,
		Semester:     input.Semester,
		Year:         input.Year,
		Shift:        input.Shift,
		Room:         input.Room,
	}
	if err := s.store.Classes().Create(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *ClassService) Get(ctx context.Context, id uuid.UUID) (*model.Class, error) {
	class, err := s.store.Classes().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return class, nil
}

func (s *ClassService) List(ctx context.Context, semester, year, offset, limit int) ([]model.Class, int64, error) {
	return s.store.Classes().List(ctx, semester, year, offset, limit)
}

func (s *ClassService) Update(ctx context.Context, id uuid.UUID, input ClassInput) (*model.Class, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	class, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	class.CourseID = input.CourseID
	class.DisciplineID = input.DisciplineID
	class.TeacherID = input.TeacherID
	class.Semester = input.Semester
	class.Year = input.Year
	class.Shift = input.Shift
	class.Room = input.Room

	if err := s.store.Classes().Update(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *ClassService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Classes().Delete(ctx, id)
}
