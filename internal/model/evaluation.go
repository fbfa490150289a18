package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EvaluationKind string

const (
	EvaluationKindExam       EvaluationKind = "exam"
	EvaluationKindAssignment EvaluationKind = "assignment"
)

func (k EvaluationKind) Valid() bool {
	return k == EvaluationKindExam || k == EvaluationKindAssignment
}

type Evaluation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ClassID   uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	Kind      EvaluationKind
	Weight    float64
	AppliedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Class *Class `gorm:"foreignKey:ClassID"`
}

func (Evaluation) TableName() string { return "evaluations" }

// Grade holds either a numeric score (0-10, two decimals) or a concept,
// never both.
type Grade struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	EvaluationID uuid.UUID `gorm:"type:uuid;index"`
	StudentID    uuid.UUID `gorm:"type:uuid;index"`
	Score        *float64
	Concept      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	Evaluation *Evaluation `gorm:"foreignKey:EvaluationID"`
	Student    *Student    `gorm:"foreignKey:StudentID"`
}

func (Grade) TableName() string { return "grades" }
