package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

type ByIDs struct {
	IDs []uuid.UUID
}

func (s ByIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id IN ?", s.IDs)
}

type ByAnimalID struct {
	AnimalID uuid.UUID
}

func (s ByAnimalID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("animal_id = ?", s.AnimalID)
}

type OwnedByUser struct {
	UserID uuid.UUID
}

func (s OwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// Scoped adapts a query scope (ordering, pagination) so it can be passed
// alongside filtering specifications.
type Scoped struct {
	Scope func(*gorm.DB) *gorm.DB
}

func (s Scoped) Apply(db *gorm.DB) *gorm.DB {
	return s.Scope(db)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
