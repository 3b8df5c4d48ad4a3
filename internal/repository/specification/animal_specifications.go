package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BySpecies struct {
	Species string
}

func (s BySpecies) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("species = ?", s.Species)
}

// AnimalSearchQuery matches the free-text listing filter against name,
// breed and description.
type AnimalSearchQuery struct {
	Query string
}

func (s AnimalSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("name ILIKE ? OR breed ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
}

// ReporterOwnedBy narrows rescue reports to a reporting user.
type ReporterOwnedBy struct {
	ReporterID uuid.UUID
}

func (s ReporterOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("reporter_id = ?", s.ReporterID)
}
