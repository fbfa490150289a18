package migration

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/secretaria-online/secretaria-api/internal/model"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeCourseName produces the matching key for a legacy course name:
// accents stripped, uppercased, whitespace collapsed. "Administração" and
// "ADMINISTRACAO" map to the same key.
func NormalizeCourseName(name string) string {
	stripped, _, err := transform.String(stripAccents, name)
	if err != nil {
		stripped = name
	}
	return strings.Join(strings.Fields(strings.ToUpper(stripped)), " ")
}

// CourseMatcher resolves legacy names against the catalog by exact
// normalized-key equality. No substring or prefix matching: "ADM" must not
// match "ADMINISTRACAO DE EMPRESAS".
type CourseMatcher struct {
	byKey map[string]model.Course
}

func NewCourseMatcher(courses []model.Course) *CourseMatcher {
	byKey := make(map[string]model.Course, len(courses))
	for _, course := range courses {
		byKey[NormalizeCourseName(course.Name)] = course
	}
	return &CourseMatcher{byKey: byKey}
}

func (m *CourseMatcher) Match(legacyName string) (model.Course, bool) {
	course, ok := m.byKey[NormalizeCourseName(legacyName)]
	return course, ok
}
