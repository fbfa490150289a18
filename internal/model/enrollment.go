package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentStatus string

const (
	EnrollmentStatusPending    EnrollmentStatus = "pending"
	EnrollmentStatusActive     EnrollmentStatus = "active"
	EnrollmentStatusCancelled  EnrollmentStatus = "cancelled"
	EnrollmentStatusReenrolled EnrollmentStatus = "reenrolled"
)

func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentStatusPending, EnrollmentStatusActive,
		EnrollmentStatusCancelled, EnrollmentStatusReenrolled:
		return true
	}
	return false
}

// Enrollment links a student to a course for a term. The status drives
// contract eligibility: only a pending enrollment can be accepted.
type Enrollment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	StudentID  uuid.UUID `gorm:"type:uuid;index"`
	CourseID   uuid.UUID `gorm:"type:uuid;index"`
	Status     EnrollmentStatus
	Semester   int
	Year       int
	EnrolledAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`

	Student *Student `gorm:"foreignKey:StudentID"`
	Course  *Course  `gorm:"foreignKey:CourseID"`
}

func (Enrollment) TableName() string { return "enrollments" }
