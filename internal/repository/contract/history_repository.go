package contract

import (
	"context"

	"ai-health-be/internal/entity"
	"ai-health-be/internal/repository/specification"

	"github.com/google/uuid"
)

type HistoryRepository interface {
	Create(ctx context.Context, record *entity.HistoryRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.HistoryRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.HistoryRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
