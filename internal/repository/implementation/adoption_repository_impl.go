package implementation

import (
	"context"
	"errors"

	"pawrescue-be/internal/entity"
	"pawrescue-be/internal/mapper"
	"pawrescue-be/internal/model"
	"pawrescue-be/internal/repository/contract"
	"pawrescue-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdoptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AdoptionMapper
}

func NewAdoptionRepository(db *gorm.DB) contract.AdoptionRepository {
	return &AdoptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewAdoptionMapper(),
	}
}

func (r *AdoptionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AdoptionRepositoryImpl) Create(ctx context.Context, request *entity.AdoptionRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *AdoptionRepositoryImpl) Update(ctx context.Context, request *entity.AdoptionRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *AdoptionRepositoryImpl) DeleteAllByAnimalId(ctx context.Context, animalId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("animal_id = ?", animalId).Delete(&model.AdoptionRequest{}).Error
}

func (r *AdoptionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdoptionRequest, error) {
	var m model.AdoptionRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AdoptionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AdoptionRequest, error) {
	var models []*model.AdoptionRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AdoptionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AdoptionRequest{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
