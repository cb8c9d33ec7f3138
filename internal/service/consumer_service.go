package service

import (
	"context"
	"encoding/json"

	"ai-health-be/internal/entity"
	"ai-health-be/internal/pkg/logger"
	"ai-health-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService persists completed diagnosis records published by the
// diagnosis pipeline. Persistence is best effort: every message is Acked,
// insert failures are logged and dropped so the pipeline never blocks on
// history writes.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		log:        log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var record entity.HistoryRecord
	if err := json.Unmarshal(msg.Payload, &record); err != nil {
		cs.log.Warn("consumer", "malformed history payload", map[string]interface{}{"error": err.Error()})
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.HistoryRepository().Create(ctx, &record); err != nil {
		cs.log.Warn("consumer", "history insert failed", map[string]interface{}{
			"error":   err.Error(),
			"disease": record.FinalDisease,
		})
		return
	}

	cs.log.Debug("consumer", "history record stored", map[string]interface{}{"id": record.Id.String()})
}
