package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TreatmentRecord struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AnimalId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	VetId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	VetName   string         `gorm:"type:varchar(255);not null"`
	Diagnosis string         `gorm:"type:text;not null"`
	Treatment string         `gorm:"type:text;not null"`
	Date      time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (TreatmentRecord) TableName() string {
	return "treatment_records"
}
