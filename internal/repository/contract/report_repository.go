package contract

import (
	"context"

	"pawrescue-be/internal/entity"
	"pawrescue-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ReportRepository interface {
	Create(ctx context.Context, report *entity.RescueReport) error
	Update(ctx context.Context, report *entity.RescueReport) error
	DeleteAllByAnimalId(ctx context.Context, animalId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RescueReport, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RescueReport, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
