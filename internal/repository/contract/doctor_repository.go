package contract

import (
	"context"

	"ai-health-be/internal/entity"
	"ai-health-be/internal/repository/specification"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Doctor, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
