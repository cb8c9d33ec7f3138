package implementation

import (
	"context"
	"errors"

	"ai-health-be/internal/entity"
	"ai-health-be/internal/mapper"
	"ai-health-be/internal/model"
	"ai-health-be/internal/repository/contract"
	"ai-health-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.HistoryMapper
}

func NewHistoryRepository(db *gorm.DB) contract.HistoryRepository {
	return &HistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewHistoryMapper(),
	}
}

func (r *HistoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *HistoryRepositoryImpl) Create(ctx context.Context, record *entity.HistoryRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *HistoryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.HistoryRecord{}, id).Error
}

func (r *HistoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.HistoryRecord, error) {
	var m model.HistoryRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *HistoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.HistoryRecord, error) {
	var models []*model.HistoryRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *HistoryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.HistoryRecord{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
