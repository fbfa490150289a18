package model

import (
	"time"

	"github.com/google/uuid"
)

// GradeReport is the data set behind a class grade-sheet export.
type GradeReport struct {
	Class       Class
	Evaluations []Evaluation
	Rows        []GradeReportRow
	GeneratedAt time.Time
}

type GradeReportRow struct {
	StudentID   uuid.UUID
	StudentName string
	// Cells is keyed by evaluation id; absent key means no grade recorded.
	Cells   map[uuid.UUID]GradeCell
	Average *float64
}

type GradeCell struct {
	Score   *float64
	Concept *string
}
