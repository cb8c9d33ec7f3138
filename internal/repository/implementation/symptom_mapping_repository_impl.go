package implementation

import (
	"context"

	"ai-health-be/internal/entity"
	"ai-health-be/internal/mapper"
	"ai-health-be/internal/model"
	"ai-health-be/internal/repository/contract"
	"ai-health-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SymptomMappingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SymptomMappingMapper
}

func NewSymptomMappingRepository(db *gorm.DB) contract.SymptomMappingRepository {
	return &SymptomMappingRepositoryImpl{
		db:     db,
		mapper: mapper.NewSymptomMappingMapper(),
	}
}

func (r *SymptomMappingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SymptomMappingRepositoryImpl) Create(ctx context.Context, mapping *entity.SymptomMapping) error {
	m := r.mapper.ToModel(mapping)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*mapping = *r.mapper.ToEntity(m)
	return nil
}

func (r *SymptomMappingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SymptomMapping, error) {
	var models []*model.SymptomMapping
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
