package contract

import (
	"context"

	"pawrescue-be/internal/entity"
	"pawrescue-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProgressRepository interface {
	Create(ctx context.Context, note *entity.ProgressNote) error
	DeleteAllByAnimalId(ctx context.Context, animalId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProgressNote, error)
}
