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

type TemplateService struct {
	store repository.Store
}

func NewTemplateService(store repository.Store) *TemplateService {
	return &TemplateService{store: store}
}

type TemplateInput struct {
	Name string
	Body string
}

func (in TemplateInput) validate() error {
	v := &validation{}
	v.require("name", in.Name)
	v.require("body", in.Body)
	return v.err()
}

func (s *TemplateService) Create(ctx context.Context, input TemplateInput) (*model.ContractTemplate, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	template := &model.ContractTemplate{
		Name: input.Name,
		Body: input.Body,
	}
	if err := s.store.Templates().Create(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *TemplateService) Get(ctx context.Context, id uuid.UUID) (*model.ContractTemplate, error) {
	template, err := s.store.Templates().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return template, nil
}

func (s *TemplateService) List(ctx context.Context) ([]model.ContractTemplate, error) {
	return s.store.Templates().List(ctx)
}

func (s *TemplateService) Update(ctx context.Context, id uuid.UUID, input TemplateInput) (*model.ContractTemplate, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	template, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	template.Name = input.Name
	template.Body = input.Body
	if err := s.store.Templates().Update(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

// Activate marks one template as the generation target and clears the flag
// on every other, atomically.
func (s *TemplateService) Activate(ctx context.Context, id uuid.UUID) (*model.ContractTemplate, error) {
	var activated *model.ContractTemplate
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		target, err := tx.Templates().GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		templates, err := tx.Templates().List(ctx)
		if err != nil {
			return err
		}
		for i := range templates {
			if templates[i].Active && templates[i].ID != target.ID {
				templates[i].Active = false
				if err := tx.Templates().Update(ctx, &templates[i]); err != nil {
					return err
				}
			}
		}

		target.Active = true
		if err := tx.Templates().Update(ctx, target); err != nil {
			return err
		}
		activated = target
		return nil
	})
	if err != nil {
		return nil, err
	}
	return activated, nil
}

func (s *TemplateService) Delete(ctx context.Context, id uuid.UUID) error {
	template, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if template.Active {
		return fmt.Errorf("%w: active template cannot be deleted", ErrConflict)
	}
	return s.store.Templates().Delete(ctx, id)
}
