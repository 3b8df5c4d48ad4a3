package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressNote struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AnimalId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	AuthorId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status    string         `gorm:"type:varchar(50);not null"`
	Note      string         `gorm:"type:text;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (ProgressNote) TableName() string {
	return "progress_notes"
}
