package pdf

import (
	"bytes"
	"testing"
)

func TestRenderProducesPDF(t *testing.T) {
	generator := NewGenerator()

	data, err := generator.Render(
		"Contrato de Prestação de Serviços Educacionais",
		"<p>Aluno: João Pereira</p><p>Curso: Administração por R$ 499,90</p>",
	)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not start with %%PDF header: %q", data[:12])
	}
}

func TestFlattenHTML(t *testing.T) {
	paragraphs := flattenHTML("<p>Primeiro par&aacute;grafo</p><div>Segundo</div><br>Terceiro")
	want := []string{"Primeiro parágrafo", "Segundo", "Terceiro"}
	if len(paragraphs) != len(want) {
		t.Fatalf("paragraphs = %q, want %q", paragraphs, want)
	}
	for i := range want {
		if paragraphs[i] != want[i] {
			t.Errorf("paragraph %d = %q, want %q", i, paragraphs[i], want[i])
		}
	}
}

func TestFlattenHTMLEmptyBody(t *testing.T) {
	paragraphs := flattenHTML("")
	if len(paragraphs) != 1 || paragraphs[0] != "" {
		t.Fatalf("paragraphs = %q, want one empty string", paragraphs)
	}
}
