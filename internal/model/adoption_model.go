package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdoptionRequest struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AnimalId  uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Message   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:varchar(50);not null;default:'pending';index"`
	DecidedAt *time.Time
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (AdoptionRequest) TableName() string {
	return "adoption_requests"
}
