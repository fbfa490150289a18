package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func validStudentInput() StudentInput {
	return StudentInput{
		Name:      "Maria Souza",
		CPF:       "123.456.789-01",
		RG:        "MG-12.345.678",
		Phone:     "31987654321",
		Email:     "maria@example.com",
		BirthDate: "2000-05-20",
		Address:   "Rua das Flores, 100",
		City:      "Belo Horizonte",
		State:     "MG",
	}
}

func TestCreateStudentNormalizesCPF(t *testing.T) {
	store := newMockStore()
	svc := NewStudentService(store)

	input := validStudentInput()
	input.CPF = "12345678901"
	student, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if student.CPF != "123.456.789-01" {
		t.Fatalf("cpf = %q, want formatted", student.CPF)
	}
	if student.BirthDate == nil {
		t.Fatal("birth date not parsed")
	}
}

func TestCreateStudentRejectsDuplicateCPF(t *testing.T) {
	store := newMockStore()
	svc := NewStudentService(store)

	if _, err := svc.Create(context.Background(), validStudentInput()); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	// Same CPF in raw-digit form still collides.
	input := validStudentInput()
	input.CPF = "12345678901"
	input.Email = "outra@example.com"
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestCreateStudentAggregatesFieldErrors(t *testing.T) {
	svc := NewStudentService(newMockStore())

	_, err := svc.Create(context.Background(), StudentInput{CPF: "123", Phone: "99"})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	fields := make(map[string]bool)
	for _, f := range validationErr.Fields {
		fields[f.Field] = true
	}
	for _, want := range []string{"name", "cpf", "phone"} {
		if !fields[want] {
			t.Errorf("missing field error for %q, got %+v", want, validationErr.Fields)
		}
	}
}

func TestUpdateStudentKeepsIdentity(t *testing.T) {
	store := newMockStore()
	svc := NewStudentService(store)

	student, err := svc.Create(context.Background(), validStudentInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	input := validStudentInput()
	input.Phone = "31912340000"
	updated, err := svc.Update(context.Background(), student.ID, input)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != student.ID {
		t.Fatal("update changed the id")
	}
	if updated.Phone != "31912340000" {
		t.Fatalf("phone = %q, want updated value", updated.Phone)
	}
}

func TestGetStudentNotFound(t *testing.T) {
	svc := NewStudentService(newMockStore())

	_, err := svc.Get(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
