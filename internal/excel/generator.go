package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/secretaria-online/secretaria-api/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders a class grade sheet: a summary block followed by the
// student × evaluation matrix with a weighted-average column.
func (g *Generator) Generate(report model.GradeReport) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Notas"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Disciplina")
	set("B1", disciplineName(report.Class))
	set("A2", "Curso")
	set("B2", courseName(report.Class))
	set("A3", "Professor")
	set("B3", teacherName(report.Class))
	set("A4", "Período")
	set("B4", fmt.Sprintf("%d/%d", report.Class.Semester, report.Class.Year))
	set("A5", "Gerado em")
	set("B5", report.GeneratedAt.Format("02/01/2006 15:04"))

	headerRow := 7
	cell, _ := excelize.CoordinatesToCellName(1, headerRow)
	_ = file.SetCellValue(sheet, cell, "Aluno")
	for i, evaluation := range report.Evaluations {
		cell, _ := excelize.CoordinatesToCellName(i+2, headerRow)
		_ = file.SetCellValue(sheet, cell, evaluation.Name)
	}
	avgCell, _ := excelize.CoordinatesToCellName(len(report.Evaluations)+2, headerRow)
	_ = file.SetCellValue(sheet, avgCell, "Média")

	for rowIdx, row := range report.Rows {
		rowNum := headerRow + 1 + rowIdx
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		_ = file.SetCellValue(sheet, cell, row.StudentName)

		for colIdx, evaluation := range report.Evaluations {
			cell, _ := excelize.CoordinatesToCellName(colIdx+2, rowNum)
			grade, ok := row.Cells[evaluation.ID]
			switch {
			case !ok:
				_ = file.SetCellValue(sheet, cell, "-")
			case grade.Score != nil:
				_ = file.SetCellValue(sheet, cell, *grade.Score)
			case grade.Concept != nil:
				_ = file.SetCellValue(sheet, cell, *grade.Concept)
			}
		}

		cell, _ = excelize.CoordinatesToCellName(len(report.Evaluations)+2, rowNum)
		if row.Average != nil {
			_ = file.SetCellValue(sheet, cell, fmt.Sprintf("%.2f", *row.Average))
		} else {
			_ = file.SetCellValue(sheet, cell, "-")
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func disciplineName(class model.Class) string {
	if class.Discipline != nil {
		return class.Discipline.Name
	}
	return ""
}

func courseName(class model.Class) string {
	if class.Course != nil {
		return class.Course.Name
	}
	return ""
}

func teacherName(class model.Class) string {
	if class.Teacher != nil {
		return class.Teacher.Name
	}
	return ""
}
