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

type StudentService struct {
	store repository.Store
}

func NewStudentService(store repository.Store) *StudentService {
	return &StudentService{store: store}
}

type StudentInput struct {
	Name      string
	CPF       string
	RG        string
	Phone     string
	Email     string
	BirthDate string
	Address   string
	City      string
	State     string
}

func (in StudentInput) validate() (*time.Time, error) {
	v := &validation{}
	v.require("name", in.Name)
	v.require("cpf", in.CPF)
	if in.CPF != "" && !isValidCPF(in.CPF) {
		v.add("cpf", "must contain 11 digits")
	}
	if in.Phone != "" && !isValidPhone(in.Phone) {
		v.add("phone", "must contain 10 or 11 digits")
	}

	var birthDate *time.Time
	if in.BirthDate != "" {
		parsed, err := time.Parse("2006-01-02", in.BirthDate)
		if err != nil {
			v.add("birth_date", "must be formatted as YYYY-MM-DD")
		} else {
			birthDate = &parsed
		}
	}
	if err := v.err(); err != nil {
		return nil, err
	}
	return birthDate, nil
}

func (s *StudentService) Create(ctx context.Context, input StudentInput) (*model.Student, error) {
	birthDate, err := input.validate()
	if err != nil {
		return nil, err
	}

	if _, err := s.store.Students().GetByCPF(ctx, FormatCPF(input.CPF)); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	student := &model.Student{
		Name:      input.Name,
		CPF:       FormatCPF(input.CPF),
		RG:        input.RG,
		Phone:     input.Phone,
		Email:     input.Email,
		BirthDate: birthDate,
		Address:   input.Address,
		City:      input.City,
		State:     input.State,
	}
	if err := s.store.Students().Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Get(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	student, err := s.store.Students().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return student, nil
}

func (s *StudentService) List(ctx context.Context, offset, limit int) ([]model.Student, int64, error) {
	return s.store.Students().List(ctx, offset, limit)
}

func (s *StudentService) Update(ctx context.Context, id uuid.UUID, input StudentInput) (*model.Student, error) {
	birthDate, err := input.validate()
	if err != nil {
		return nil, err
	}

	student, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	student.Name = input.Name
	student.CPF = FormatCPF(input.CPF)
	student.RG = input.RG
	student.Phone = input.Phone
	student.Email = input.Email
	student.BirthDate = birthDate
	student.Address = input.Address
	student.City = input.City
	student.State = input.State

	if err := s.store.Students().Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Students().Delete(ctx, id)
}
