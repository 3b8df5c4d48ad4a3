package unitofwork

import (
	"context"

	"pawrescue-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	AnimalRepository() contract.AnimalRepository
	AdoptionRepository() contract.AdoptionRepository
	ReportRepository() contract.ReportRepository
	TreatmentRepository() contract.TreatmentRepository
	ProgressRepository() contract.ProgressRepository
}
