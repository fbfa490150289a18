package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/secretaria-online/secretaria-api/internal/model"
	"github.com/secretaria-online/secretaria-api/internal/repository"
)

type TeacherService struct {
	store repository.Store
}

func NewTeacherService(store repository.Store) *TeacherService {
	return &TeacherService{store: store}
}

type TeacherInput struct {
	Name   string
	CPF    string
	Phone  string
	Email  string
	Degree string
}

func (in TeacherInput) validate() error {
	v := &validation{}
	v.require("name", in.Name)
	v.require("cpf", in.CPF)
	if in.CPF != "" && !isValidCPF(in.CPF) {
		v.add("cpf", "must contain 11 digits")
	}
	if in.Phone != "" && !isValidPhone(in.Phone) {
		v.add("phone", "must contain 10 or 11 digits")
	}
	return v.err()
}

func (s *TeacherService) Create(ctx context.Context, input TeacherInput) (*model.Teacher, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	teacher := &model.Teacher{
		Name:   input.Name,
		CPF:    FormatCPF(input.CPF),
		Phone:  input.Phone,
		Email:  input.Email,
		Degree: input.Degree,
	}
	if err := s.store.Teachers().Create(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

func (s *TeacherService) Get(ctx context.Context, id uuid.UUID) (*model.Teacher, error) {
	teacher, err := s.store.Teachers().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return teacher, nil
}

func (s *TeacherService) List(ctx context.Context, offset, limit int) ([]model.Teacher, int64, error) {
	return s.store.Teachers().List(ctx, offset, limit)
}

func (s *TeacherService) Update(ctx context.Context, id uuid.UUID, input TeacherInput) (*model.Teacher, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	teacher, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	teacher.Name = input.Name
	teacher.CPF = FormatCPF(input.CPF)
	teacher.Phone = input.Phone
	teacher.Email = input.Email
	teacher.Degree = input.Degree

	if err := s.store.Teachers().Update(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

func (s *TeacherService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Teachers().Delete(ctx, id)
}
