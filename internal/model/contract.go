package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contract references a generated PDF on disk. FilePath and FileName stay
// null until generation succeeds.
type Contract struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	TemplateID   uuid.UUID  `gorm:"type:uuid;index"`
	UserID       uuid.UUID  `gorm:"type:uuid;index"`
	EnrollmentID *uuid.UUID `gorm:"type:uuid;index"`
	FilePath     *string
	FileName     *string
	GeneratedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	Template   *ContractTemplate `gorm:"foreignKey:TemplateID"`
	Enrollment *Enrollment       `gorm:"foreignKey:EnrollmentID"`
}

func (Contract) TableName() string { return "contracts" }

// ContractTemplate holds the HTML body with {{TOKEN}} placeholders
// substituted at generation time.
type ContractTemplate struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name      string
	Body      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (ContractTemplate) TableName() string { return "contract_templates" }
