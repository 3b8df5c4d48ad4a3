package implementation

import (
	"context"

	"pawrescue-be/internal/entity"
	"pawrescue-be/internal/mapper"
	"pawrescue-be/internal/model"
	"pawrescue-be/internal/repository/contract"
	"pawrescue-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProgressMapper
}

func NewProgressRepository(db *gorm.DB) contract.ProgressRepository {
	return &ProgressRepositoryImpl{
		db:     db,
		mapper: mapper.NewProgressMapper(),
	}
}

func (r *ProgressRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProgressRepositoryImpl) Create(ctx context.Context, note *entity.ProgressNote) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProgressRepositoryImpl) DeleteAllByAnimalId(ctx context.Context, animalId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("animal_id = ?", animalId).Delete(&model.ProgressNote{}).Error
}

func (r *ProgressRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProgressNote, error) {
	var models []*model.ProgressNote
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
