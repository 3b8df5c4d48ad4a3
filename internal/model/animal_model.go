package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Animal struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Species     string         `gorm:"type:varchar(50);not null;index"`
	Breed       string         `gorm:"type:varchar(255);not null"`
	Age         int            `gorm:"not null"`
	PhotoURL    string         `gorm:"type:text;not null"`
	Description string         `gorm:"type:text;not null"`
	Status      string         `gorm:"type:varchar(50);not null;default:'available';index"`
	Location    string         `gorm:"type:varchar(255);not null"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Animal) TableName() string {
	return "animals"
}
