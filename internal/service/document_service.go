package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/secretaria-online/secretaria-api/internal/model"
	"github.com/secretaria-online/secretaria-api/internal/repository"
)

type DocumentService struct {
	store repository.Store
	files FileStore
}

func NewDocumentService(store repository.Store, files FileStore) *DocumentService {
	return &DocumentService{store: store, files: files}
}

type DocumentInput struct {
	StudentID uuid.UUID
	Type      string
	FileName  string
	FilePath  string
	FileSize  int64
	MimeType  string
}

func (in DocumentInput) validate() error {
	v := &validation{}
	if in.StudentID == uuid.Nil {
		v.add("student_id", "is required")
	}
	v.require("type", in.Type)
	v.require("file_name", in.FileName)
	v.require("file_path", in.FilePath)
	if in.FileSize <= 0 {
		v.add("file_size", "must be positive")
	}
	return v.err()
}

func (s *DocumentService) Create(ctx context.Context, input DocumentInput) (*model.Document, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	if _, err := s.store.Students().GetByID(ctx, input.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: student", ErrNotFound)
		}
		return nil, err
	}

	document := &model.Document{
		StudentID: input.StudentID,
		Type:      input.Type,
		FileName:  input.FileName,
		FilePath:  input.FilePath,
		FileSize:  input.FileSize,
		MimeType:  input.MimeType,
	}
	if err := s.store.Documents().Create(ctx, document); err != nil {
		return nil, err
	}
	return document, nil
}

func (s *DocumentService) Get(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	document, err := s.store.Documents().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return document, nil
}

func (s *DocumentService) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Document, error) {
	return s.store.Documents().ListByStudent(ctx, studentID)
}

// Delete soft-deletes the record and removes the file best-effort.
func (s *DocumentService) Delete(ctx context.Context, id uuid.UUID) error {
	document, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Documents().Delete(ctx, id); err != nil {
		return err
	}
	_ = s.files.Remove(document.FilePath)
	return nil
}
