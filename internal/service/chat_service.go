package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ai-health-be/internal/constant"
	"ai-health-be/internal/dto"
	"ai-health-be/internal/entity"
	"ai-health-be/internal/pkg/logger"
	"ai-health-be/internal/repository/specification"
	"ai-health-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const chatHistoryContext = 5

type IChatService interface {
	Ask(ctx context.Context, userId *uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

// chatService answers free-form health questions. Logged-in callers get
// their recent diagnoses prepended as context so "what did you tell me last
// time" style questions work, and their turns land in history through the
// same best-effort pipeline the diagnosis conversation uses.
type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	gen        TextGenerator
	publisher  IPublisherService
	languages  ILanguageResolver
	log        logger.ILogger
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, gen TextGenerator, publisher IPublisherService, languages ILanguageResolver, log logger.ILogger) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		gen:        gen,
		publisher:  publisher,
		languages:  languages,
		log:        log,
	}
}

func (s *chatService) Ask(ctx context.Context, userId *uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	lang := s.languages.Resolve(ctx, userId, req.Language)

	userName := ""
	question := req.Question
	if userId != nil {
		userName, question = s.personalize(ctx, *userId, question)
	}

	answer := s.gen.GenerateText(ctx, constant.ChatPrompt(question, lang, userName))
	if answer == "" {
		answer = constant.GetFallbackMessages(lang).ConsultDoctor
	}

	if userId != nil {
		s.publishTurn(ctx, *userId, req.Question, answer, lang)
	}

	return &dto.ChatResponse{Answer: answer}, nil
}

// publishTurn records one answered question for the caller. Anonymous turns
// are not persisted; failures are logged and the answer still goes out.
func (s *chatService) publishTurn(ctx context.Context, userId uuid.UUID, question, answer, lang string) {
	record := entity.HistoryRecord{
		Id:            uuid.New(),
		UserId:        &userId,
		Type:          entity.HistoryTypeChat,
		OriginalInput: question,
		Explanation:   answer,
		Language:      lang,
		CreatedAt:     time.Now(),
	}

	payload, err := json.Marshal(record)
	if err != nil {
		s.log.Warn("chat", "history marshal failed", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.log.Warn("chat", "history publish failed", map[string]interface{}{"error": err.Error()})
	}
}

// personalize looks up the caller's name and recent diagnoses. Lookup
// failures just mean an unpersonalized answer.
func (s *chatService) personalize(ctx context.Context, userId uuid.UUID, question string) (string, string) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	userName := ""
	if user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId}); err == nil && user != nil {
		userName = user.FullName
	}

	records, err := uow.HistoryRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: chatHistoryContext},
	)
	if err != nil {
		s.log.Warn("chat", "history context unavailable", map[string]interface{}{"error": err.Error()})
		return userName, question
	}
	if len(records) == 0 {
		return userName, question
	}

	var b strings.Builder
	b.WriteString("The user's recent diagnoses, newest first:\n")
	for _, record := range records {
		b.WriteString(fmt.Sprintf("- %s (%s)\n", record.FinalDisease, record.CreatedAt.Format("2006-01-02")))
	}
	b.WriteString("\n")
	b.WriteString(question)
	return userName, b.String()
}
