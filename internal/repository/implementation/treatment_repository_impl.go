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

type TreatmentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TreatmentMapper
}

func NewTreatmentRepository(db *gorm.DB) contract.TreatmentRepository {
	return &TreatmentRepositoryImpl{
		db:     db,
		mapper: mapper.NewTreatmentMapper(),
	}
}

func (r *TreatmentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TreatmentRepositoryImpl) Create(ctx context.Context, record *entity.TreatmentRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *TreatmentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TreatmentRecord{}, id).Error
}

func (r *TreatmentRepositoryImpl) DeleteAllByAnimalId(ctx context.Context, animalId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("animal_id = ?", animalId).Delete(&model.TreatmentRecord{}).Error
}

func (r *TreatmentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TreatmentRecord, error) {
	var m model.TreatmentRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TreatmentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TreatmentRecord, error) {
	var models []*model.TreatmentRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TreatmentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.TreatmentRecord{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
