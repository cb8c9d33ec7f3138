package unitofwork

import (
	"context"

	"ai-health-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	DoctorRepository() contract.DoctorRepository
	SymptomMappingRepository() contract.SymptomMappingRepository
	HistoryRepository() contract.HistoryRepository
}
