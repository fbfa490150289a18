package service

import (
	"context"
	"errors"
	"testing"
)

func TestActivateTemplateSwapsActiveFlag(t *testing.T) {
	store := newMockStore()
	svc := NewTemplateService(store)
	ctx := context.Background()

	first, err := svc.Create(ctx, TemplateInput{Name: "Contrato v1", Body: "{{NOME_ALUNO}}"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := svc.Create(ctx, TemplateInput{Name: "Contrato v2", Body: "{{NOME_ALUNO}}"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Activate(ctx, first.ID); err != nil {
		t.Fatalf("Activate first: %v", err)
	}
	if _, err := svc.Activate(ctx, second.ID); err != nil {
		t.Fatalf("Activate second: %v", err)
	}

	var activeCount int
	for _, template := range store.templates {
		if template.Active {
			activeCount++
			if template.ID != second.ID {
				t.Errorf("template %s active, want only %s", template.ID, second.ID)
			}
		}
	}
	if activeCount != 1 {
		t.Fatalf("active templates = %d, want 1", activeCount)
	}
}

func TestDeleteActiveTemplateRefused(t *testing.T) {
	store := newMockStore()
	svc := NewTemplateService(store)
	ctx := context.Background()

	template, err := svc.Create(ctx, TemplateInput{Name: "Contrato", Body: "corpo"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Activate(ctx, template.ID); err != nil {
		t.Fatalf("Activate: %v", err)
	}

	if err := svc.Delete(ctx, template.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	if _, ok := store.templates[template.ID]; !ok {
		t.Fatal("active template was deleted")
	}
}

func TestDeleteInactiveTemplate(t *testing.T) {
	store := newMockStore()
	svc := NewTemplateService(store)
	ctx := context.Background()

	template, err := svc.Create(ctx, TemplateInput{Name: "Contrato", Body: "corpo"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(ctx, template.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(store.templates) != 0 {
		t.Fatal("template still stored")
	}
}

func TestTemplateValidation(t *testing.T) {
	svc := NewTemplateService(newMockStore())

	_, err := svc.Create(context.Background(), TemplateInput{Name: "", Body: ""})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if len(validationErr.Fields) != 2 {
		t.Fatalf("fields = %d, want 2 (name and body)", len(validationErr.Fields))
	}
}
