package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/secretaria-online/secretaria-api/internal/model"
	"github.com/secretaria-online/secretaria-api/internal/repository"
)

// ExcelGenerator renders a grade report as an xlsx workbook.
type ExcelGenerator interface {
	Generate(report model.GradeReport) ([]byte, error)
}

type ReportService struct {
	store repository.Store
	excel ExcelGenerator
}

func NewReportService(store repository.Store, excel ExcelGenerator) *ReportService {
	return &ReportService{store: store, excel: excel}
}

type GradeExportResult struct {
	FileName string
	Content  []byte
}

// ExportClassGrades builds the grade matrix for a class and renders it.
// Teachers may only export classes they teach.
func (s *ReportService) ExportClassGrades(ctx context.Context, classID uuid.UUID, principal model.Principal) (*GradeExportResult, error) {
	if principal.IsStudent() {
		return nil, ErrPermissionDenied
	}

	class, err := s.store.Classes().GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if principal.IsTeacher() {
		teacher, err := s.store.Teachers().GetByUserID(ctx, principal.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPermissionDenied
			}
			return nil, err
		}
		if class.TeacherID != teacher.ID {
			return nil, ErrPermissionDenied
		}
	}

	evaluations, err := s.store.Evaluations().ListByClass(ctx, classID)
	if err != nil {
		return nil, err
	}
	students, err := s.store.Students().ListActiveByCourse(ctx, class.CourseID)
	if err != nil {
		return nil, err
	}
	grades, err := s.store.Grades().ListByClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	report := buildGradeReport(*class, evaluations, students, grades)

	content, err := s.excel.Generate(report)
	if err != nil {
		return nil, err
	}
	return &GradeExportResult{
		FileName: gradeExportFileName(report),
		Content:  content,
	}, nil
}

func buildGradeReport(class model.Class, evaluations []model.Evaluation, students []model.Student, grades []model.Grade) model.GradeReport {
	byStudent := make(map[uuid.UUID]map[uuid.UUID]model.GradeCell, len(students))
	for _, grade := range grades {
		cells, ok := byStudent[grade.StudentID]
		if !ok {
			cells = make(map[uuid.UUID]model.GradeCell)
			byStudent[grade.StudentID] = cells
		}
		cells[grade.EvaluationID] = model.GradeCell{Score: grade.Score, Concept: grade.Concept}
	}

	rows := make([]model.GradeReportRow, 0, len(students))
	for _, student := range students {
		cells := byStudent[student.ID]
		if cells == nil {
			cells = map[uuid.UUID]model.GradeCell{}
		}
		rows = append(rows, model.GradeReportRow{
			StudentID:   student.ID,
			StudentName: student.Name,
			Cells:       cells,
			Average:     weightedAverage(evaluations, cells),
		})
	}

	return model.GradeReport{
		Class:       class,
		Evaluations: evaluations,
		Rows:        rows,
		GeneratedAt: time.Now(),
	}
}

// weightedAverage considers numeric scores only; concept-graded and missing
// evaluations are left out of the denominator.
func weightedAverage(evaluations []model.Evaluation, cells map[uuid.UUID]model.GradeCell) *float64 {
	var sum, weight float64
	for _, evaluation := range evaluations {
		cell, ok := cells[evaluation.ID]
		if !ok || cell.Score == nil {
			continue
		}
		sum += *cell.Score * evaluation.Weight
		weight += evaluation.Weight
	}
	if weight == 0 {
		return nil
	}
	avg := sum / weight
	return &avg
}

func gradeExportFileName(report model.GradeReport) string {
	name := "class"
	if report.Class.Discipline != nil {
		name = sanitizeFileName(report.Class.Discipline.Name)
	}
	return fmt.Sprintf("notas-%s-%d-%d.xlsx", name, report.Class.Year, report.Class.Semester)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
