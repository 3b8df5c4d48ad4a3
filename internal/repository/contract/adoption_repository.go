package contract

import (
	"context"

	"pawrescue-be/internal/entity"
	"pawrescue-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AdoptionRepository interface {
	Create(ctx context.Context, request *entity.AdoptionRequest) error
	Update(ctx context.Context, request *entity.AdoptionRequest) error
	DeleteAllByAnimalId(ctx context.Context, animalId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdoptionRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AdoptionRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
