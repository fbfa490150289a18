package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Class links a course, a discipline and a teacher for one term.
type Class struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CourseID     uuid.UUID `gorm:"type:uuid;index"`
	DisciplineID uuid.UUID `gorm:"type:uuid;index"`
	TeacherID    uuid.UUID `gorm:"type:uuid;index"`
	Semester     int
	Year         int
	Shift        string
	Room         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	Course     *Course     `gorm:"foreignKey:CourseID"`
	Discipline *Discipline `gorm:"foreignKey:DisciplineID"`
	Teacher    *Teacher    `gorm:"foreignKey:TeacherID"`
}

func (Class) TableName() string { return "classes" }
