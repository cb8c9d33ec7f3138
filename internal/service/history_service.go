package service

import (
	"context"

	"ai-health-be/internal/dto"
	"ai-health-be/internal/entity"
	"ai-health-be/internal/repository/specification"
	"ai-health-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const defaultHistoryLimit = 50

type IHistoryService interface {
	List(ctx context.Context, userId uuid.UUID, recordType string, limit int) (*dto.ListHistoryResponse, error)
	Get(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.HistoryItemResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

// historyService reads the caller's own diagnosis records. Every query is
// owner scoped; there is no cross-user access path.
type historyService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewHistoryService(uowFactory unitofwork.RepositoryFactory) IHistoryService {
	return &historyService{
		uowFactory: uowFactory,
	}
}

func (s *historyService) List(ctx context.Context, userId uuid.UUID, recordType string, limit int) (*dto.ListHistoryResponse, error) {
	if limit <= 0 || limit > defaultHistoryLimit {
		limit = defaultHistoryLimit
	}

	filters := []specification.Specification{specification.OwnedBy{UserID: userId}}
	if entity.KnownHistoryType(recordType) {
		filters = append(filters, specification.ByHistoryType{Type: recordType})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	records, err := uow.HistoryRepository().FindAll(ctx, append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	)...)
	if err != nil {
		return nil, err
	}

	total, err := uow.HistoryRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.HistoryItemResponse, 0, len(records))
	for _, record := range records {
		items = append(items, toHistoryItemDTO(record))
	}
	return &dto.ListHistoryResponse{Items: items, Total: total}, nil
}

func (s *historyService) Get(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.HistoryItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.HistoryRepository().FindOne(ctx, specification.ByID{ID: id}, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "history record not found")
	}

	item := toHistoryItemDTO(record)
	return &item, nil
}

func (s *historyService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.HistoryRepository().FindOne(ctx, specification.ByID{ID: id}, specification.OwnedBy{UserID: userId})
	if err != nil {
		return err
	}
	if record == nil {
		return fiber.NewError(fiber.StatusNotFound, "history record not found")
	}

	return uow.HistoryRepository().Delete(ctx, id)
}

func toHistoryItemDTO(record *entity.HistoryRecord) dto.HistoryItemResponse {
	questions := make([]dto.HistoryQuestionAnswer, 0, len(record.QuestionsAsked))
	for _, qa := range record.QuestionsAsked {
		questions = append(questions, dto.HistoryQuestionAnswer{Question: qa.Question, Answer: qa.Answer})
	}

	doctors := make([]dto.RecommendedDoctor, 0, len(record.Doctors))
	for _, d := range record.Doctors {
		doctors = append(doctors, dto.RecommendedDoctor{
			Name:      d.Name,
			Specialty: d.Specialty,
			Hospital:  d.Hospital,
			Location: dto.DoctorLocation{
				Address: d.Address,
				City:    d.City,
				State:   d.State,
				Lat:     d.Latitude,
				Lng:     d.Longitude,
			},
			Rating:     d.Rating,
			DistanceKm: d.DistanceKm,
			Source:     string(d.Source),
		})
	}

	return dto.HistoryItemResponse{
		Id:             record.Id,
		Type:           string(record.Type),
		OriginalInput:  record.OriginalInput,
		Symptoms:       record.Symptoms,
		InitialDisease: record.InitialDisease,
		FinalDisease:   record.FinalDisease,
		Explanation:    record.Explanation,
		Urgency:        record.Urgency,
		DiseaseChanged: record.DiseaseChanged,
		ChangeReason:   record.ChangeReason,
		QuestionsAsked: questions,
		Doctors:        doctors,
		CreatedAt:      record.CreatedAt,
	}
}
