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

type AnimalRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnimalMapper
}

func NewAnimalRepository(db *gorm.DB) contract.AnimalRepository {
	return &AnimalRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnimalMapper(),
	}
}

func (r *AnimalRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AnimalRepositoryImpl) Create(ctx context.Context, animal *entity.Animal) error {
	m := r.mapper.ToModel(animal)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*animal = *r.mapper.ToEntity(m)
	return nil
}

func (r *AnimalRepositoryImpl) Update(ctx context.Context, animal *entity.Animal) error {
	m := r.mapper.ToModel(animal)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*animal = *r.mapper.ToEntity(m)
	return nil
}

func (r *AnimalRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Animal{}, id).Error
}

func (r *AnimalRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Animal, error) {
	var m model.Animal
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AnimalRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Animal, error) {
	var models []*model.Animal
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AnimalRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Animal{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
