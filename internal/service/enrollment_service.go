package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/secretaria-online/secretaria-api/internal/model"
	"github.com/secretaria-online/secretaria-api/internal/repository"
)

// Mailer delivers plain-text notifications. Implementations must be safe to
// call concurrently.
type Mailer interface {
	Send(to, subject, body string) error
}

type EnrollmentService struct {
	store  repository.Store
	mailer Mailer // nil disables notifications
	log    zerolog.Logger
}

func NewEnrollmentService(store repository.Store, mailer Mailer, log zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{store: store, mailer: mailer, log: log}
}

type EnrollmentInput struct {
	StudentID uuid.UUID
	CourseID  uuid.UUID
	Semester  int
	Year      int
}

func (in EnrollmentInput) validate() error {
	v := &validation{}
	if in.StudentID == uuid.Nil {
		v.add("student_id", "is required")
	}
	if in.CourseID == uuid.Nil {
		v.add("course_id", "is required")
	}
	if in.Semester != 1 && in.Semester != 2 {
		v.add("semester", "must be 1 or 2")
	}
	if in.Year < 2000 {
		v.add("year", "is out of range")
	}
	return v.err()
}

func (s *EnrollmentService) Create(ctx context.Context, input EnrollmentInput) (*model.Enrollment, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	if _, err := s.store.Students().GetByID(ctx, input.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: student", ErrNotFound)
		}
		return nil, err
	}
	if _, err := s.store.Courses().GetByID(ctx, input.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course", ErrNotFound)
		}
		return nil, err
	}

	open, err := s.store.Enrollments().HasOpenEnrollment(ctx, input.StudentID, input.CourseID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, fmt.Errorf("%w: student already enrolled in course", ErrConflict)
	}

	enrollment := &model.Enrollment{
		StudentID:  input.StudentID,
		CourseID:   input.CourseID,
		Status:     model.EnrollmentStatusPending,
		Semester:   input.Semester,
		Year:       input.Year,
		EnrolledAt: time.Now(),
	}
	if err := s.store.Enrollments().Create(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) Get(ctx context.Context, id uuid.UUID) (*model.Enrollment, error) {
	enrollment, err := s.store.Enrollments().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) List(ctx context.Context, status model.EnrollmentStatus, offset, limit int) ([]model.Enrollment, int64, error) {
	if status != "" && !status.Valid() {
		return nil, 0, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}
	return s.store.Enrollments().List(ctx, status, offset, limit)
}

func (s *EnrollmentService) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Enrollment, error) {
	return s.store.Enrollments().ListByStudent(ctx, studentID)
}

func (s *EnrollmentService) Cancel(ctx context.Context, id uuid.UUID) (*model.Enrollment, error) {
	enrollment, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if enrollment.Status == model.EnrollmentStatusCancelled {
		return nil, fmt.Errorf("%w: enrollment already cancelled", ErrConflict)
	}

	enrollment.Status = model.EnrollmentStatusCancelled
	if err := s.store.Enrollments().Update(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// Reenroll moves every active enrollment to pending for the new term, in a
// single transaction. It creates no contracts; those come later when each
// student accepts. Returns the number of enrollments affected.
func (s *EnrollmentService) Reenroll(ctx context.Context, semester, year int) (int64, error) {
	v := &validation{}
	if semester != 1 && semester != 2 {
		v.add("semester", "must be 1 or 2")
	}
	if year < 2000 {
		v.add("year", "is out of range")
	}
	if err := v.err(); err != nil {
		return 0, err
	}

	var affected int64
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		count, err := tx.Enrollments().ReenrollActive(ctx, semester, year)
		if err != nil {
			return err
		}
		affected = count
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info().
		Int("semester", semester).
		Int("year", year).
		Int64("affected", affected).
		Msg("reenrollment batch committed")

	s.notifyReenrolled(ctx, semester, year)
	return affected, nil
}

// notifyReenrolled emails affected students after the batch commits. One
// student's failure must not block the rest.
func (s *EnrollmentService) notifyReenrolled(ctx context.Context, semester, year int) {
	if s.mailer == nil {
		return
	}

	enrollments, err := s.store.Enrollments().ListPendingByTerm(ctx, semester, year)
	if err != nil {
		s.log.Warn().Err(err).Msg("reenrollment notification lookup failed")
		return
	}

	subject := fmt.Sprintf("Rematrícula %d/%d disponível", semester, year)
	for _, enrollment := range enrollments {
		if enrollment.Student == nil || enrollment.Student.Email == "" {
			continue
		}
		body := fmt.Sprintf(
			"Olá %s,\n\nSua rematrícula para o período %d/%d está aberta. Acesse a Secretaria Online para aceitar.\n",
			enrollment.Student.Name, semester, year,
		)
		if err := s.mailer.Send(enrollment.Student.Email, subject, body); err != nil {
			s.log.Warn().
				Err(err).
				Str("enrollment_id", enrollment.ID.String()).
				Msg("reenrollment notification failed")
		}
	}
}
