package contract

import (
	"context"

	"pawrescue-be/internal/entity"
	"pawrescue-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AnimalRepository interface {
	Create(ctx context.Context, animal *entity.Animal) error
	Update(ctx context.Context, animal *entity.Animal) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Animal, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Animal, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
