package contract

import (
	"context"

	"pawrescue-be/internal/entity"
	"pawrescue-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TreatmentRepository interface {
	Create(ctx context.Context, record *entity.TreatmentRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByAnimalId(ctx context.Context, animalId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TreatmentRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TreatmentRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
