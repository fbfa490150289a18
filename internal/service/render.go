package service

import (
	"regexp"
	"strings"
)

// Placeholder tokens recognized in contract templates.
const (
	TokenStudentName    = "NOME_ALUNO"
	TokenStudentCPF     = "CPF_ALUNO"
	TokenStudentRG      = "RG_ALUNO"
	TokenStudentPhone   = "TELEFONE_ALUNO"
	TokenStudentAddress = "ENDERECO_ALUNO"
	TokenCourseName     = "NOME_CURSO"
	TokenCourseFee      = "MENSALIDADE"
	TokenEnrollmentDate = "DATA_MATRICULA"
	TokenSemester       = "SEMESTRE"
	TokenYear           = "ANO"
	TokenToday          = "DATA_ATUAL"
)

const fallbackValue = "N/A"

var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Z0-9_]+)\s*\}\}`)

// RenderTemplate substitutes every {{TOKEN}} in body. Tokens absent from
// values get the documented fallback, so substitution is always total.
func RenderTemplate(body string, values map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(body, func(match string) string {
		token := placeholderPattern.FindStringSubmatch(match)[1]
		if value, ok := values[token]; ok && strings.TrimSpace(value) != "" {
			return value
		}
		return fallbackValue
	})
}
