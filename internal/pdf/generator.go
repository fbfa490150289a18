package pdf

import (
	"bytes"
	"html"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Arial"}
}

// Render lays out the substituted contract text as an A4 document. The body
// may carry simple HTML from the template editor; tags are flattened to
// paragraphs before layout.
func (g *Generator) Render(title, body string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Core fonts are cp1252, which covers Portuguese.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(g.fontName, "B", 14)
	pdf.MultiCell(0, 8, tr(title), "", "C", false)
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "", 11)
	for _, paragraph := range flattenHTML(body) {
		pdf.MultiCell(0, 6, tr(paragraph), "", "J", false)
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var (
	breakPattern = regexp.MustCompile(`(?i)<\s*(br\s*/?|/p|/div|/li)\s*>`)
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
)

func flattenHTML(body string) []string {
	text := breakPattern.ReplaceAllString(body, "\n")
	text = tagPattern.ReplaceAllString(text, "")
	text = html.UnescapeString(text)

	var paragraphs []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paragraphs = append(paragraphs, line)
		}
	}
	if len(paragraphs) == 0 {
		paragraphs = []string{""}
	}
	return paragraphs
}
