package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	CPF       string `gorm:"column:cpf;uniqueIndex"`
	RG        string `gorm:"column:rg"`
	Phone     string
	Email     string
	BirthDate *time.Time
	Address   string
	City      string
	State     string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Student) TableName() string { return "students" }
