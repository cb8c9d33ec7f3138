package contract

import (
	"context"

	"ai-health-be/internal/entity"
	"ai-health-be/internal/repository/specification"
)

type SymptomMappingRepository interface {
	Create(ctx context.Context, mapping *entity.SymptomMapping) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SymptomMapping, error)
}
