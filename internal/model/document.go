package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Document struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	StudentID uuid.UUID `gorm:"type:uuid;index"`
	Type      string
	FileName  string
	FilePath  string
	FileSize  int64
	MimeType  string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Document) TableName() string { return "documents" }
