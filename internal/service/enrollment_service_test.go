package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/secretaria-online/secretaria-api/internal/model"
)

func seedEnrollments(store *mockStore, statuses ...model.EnrollmentStatus) []uuid.UUID {
	courseID := uuid.New()
	store.courses[courseID] = model.Course{ID: courseID, Name: "Administração"}

	ids := make([]uuid.UUID, 0, len(statuses))
	for i, status := range statuses {
		studentID := uuid.New()
		store.students[studentID] = model.Student{
			ID:    studentID,
			Name:  "Aluno",
			CPF:   "12345678901",
			Email: "aluno@example.com",
		}
		id := uuid.New()
		store.enrollments[id] = model.Enrollment{
			ID:        id,
			StudentID: studentID,
			CourseID:  courseID,
			Status:    status,
			Semester:  1,
			Year:      2025 + i%1,
		}
		ids = append(ids, id)
	}
	return ids
}

func TestReenrollMovesActiveToPending(t *testing.T) {
	store := newMockStore()
	ids := seedEnrollments(store,
		model.EnrollmentStatusActive,
		model.EnrollmentStatusActive,
		model.EnrollmentStatusCancelled,
		model.EnrollmentStatusPending,
	)
	svc := NewEnrollmentService(store, nil, zerolog.Nop())

	affected, err := svc.Reenroll(context.Background(), 2, 2026)
	if err != nil {
		t.Fatalf("Reenroll: %v", err)
	}
	if affected != 2 {
		t.Fatalf("affected = %d, want 2", affected)
	}

	for _, id := range ids[:2] {
		enrollment := store.enrollments[id]
		if enrollment.Status != model.EnrollmentStatusPending {
			t.Errorf("enrollment %s status = %q, want pending", id, enrollment.Status)
		}
		if enrollment.Semester != 2 || enrollment.Year != 2026 {
			t.Errorf("enrollment %s term = %d/%d, want 2/2026", id, enrollment.Semester, enrollment.Year)
		}
	}
	if store.enrollments[ids[2]].Status != model.EnrollmentStatusCancelled {
		t.Error("cancelled enrollment was touched")
	}
}

func TestReenrollValidatesTerm(t *testing.T) {
	svc := NewEnrollmentService(newMockStore(), nil, zerolog.Nop())

	if _, err := svc.Reenroll(context.Background(), 3, 2026); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("semester 3: err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Reenroll(context.Background(), 1, 1990); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("year 1990: err = %v, want ErrInvalidInput", err)
	}
}

func TestReenrollRollsBackOnFailure(t *testing.T) {
	store := newMockStore()
	ids := seedEnrollments(store, model.EnrollmentStatusActive, model.EnrollmentStatusActive)
	store.reenrollErr = errors.New("deadlock")
	svc := NewEnrollmentService(store, nil, zerolog.Nop())

	if _, err := svc.Reenroll(context.Background(), 2, 2026); err == nil {
		t.Fatal("expected error")
	}
	for _, id := range ids {
		if got := store.enrollments[id].Status; got != model.EnrollmentStatusActive {
			t.Errorf("enrollment %s status = %q, want active after rollback", id, got)
		}
	}
}

func TestReenrollNotifiesStudents(t *testing.T) {
	store := newMockStore()
	seedEnrollments(store, model.EnrollmentStatusActive, model.EnrollmentStatusActive)
	mailer := &fakeMailer{}
	svc := NewEnrollmentService(store, mailer, zerolog.Nop())

	if _, err := svc.Reenroll(context.Background(), 2, 2026); err != nil {
		t.Fatalf("Reenroll: %v", err)
	}
	if len(mailer.sent) != 2 {
		t.Fatalf("mails sent = %d, want 2", len(mailer.sent))
	}
}

func TestReenrollSucceedsWhenMailFails(t *testing.T) {
	store := newMockStore()
	ids := seedEnrollments(store, model.EnrollmentStatusActive)
	mailer := &fakeMailer{err: errors.New("smtp down")}
	svc := NewEnrollmentService(store, mailer, zerolog.Nop())

	affected, err := svc.Reenroll(context.Background(), 2, 2026)
	if err != nil {
		t.Fatalf("Reenroll: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected = %d, want 1", affected)
	}
	if got := store.enrollments[ids[0]].Status; got != model.EnrollmentStatusPending {
		t.Fatalf("status = %q, want pending despite mail failure", got)
	}
}

func TestCreateEnrollmentRejectsDuplicateOpen(t *testing.T) {
	store := newMockStore()
	ids := seedEnrollments(store, model.EnrollmentStatusActive)
	existing := store.enrollments[ids[0]]
	svc := NewEnrollmentService(store, nil, zerolog.Nop())

	_, err := svc.Create(context.Background(), EnrollmentInput{
		StudentID: existing.StudentID,
		CourseID:  existing.CourseID,
		Semester:  1,
		Year:      2026,
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestCancelEnrollment(t *testing.T) {
	store := newMockStore()
	ids := seedEnrollments(store, model.EnrollmentStatusActive)
	svc := NewEnrollmentService(store, nil, zerolog.Nop())

	enrollment, err := svc.Cancel(context.Background(), ids[0])
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if enrollment.Status != model.EnrollmentStatusCancelled {
		t.Fatalf("status = %q, want cancelled", enrollment.Status)
	}
}
