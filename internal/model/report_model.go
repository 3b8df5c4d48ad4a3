package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RescueReport struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AnimalId   uuid.UUID      `gorm:"type:uuid;not null;index"`
	ReporterId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status     string         `gorm:"type:varchar(50);not null;default:'new';index"`
	Notes      string         `gorm:"type:text;not null"`
	Location   string         `gorm:"type:varchar(255);not null"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (RescueReport) TableName() string {
	return "rescue_reports"
}
