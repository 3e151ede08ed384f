// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"legal-research-be/internal/dto"
	"legal-research-be/internal/entity"
	"legal-research-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the event topic and writes an audit row per event.
// Disambiguation lifecycle events (opened / resolved / abandoned) end up in
// the system_logs table for offline analysis of how often users get asked
// to pick a case and how the prompts resolve.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
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
	var envelope dto.EventEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		log.Printf("[ERROR] Failed to unmarshal event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	record := entity.SystemLog{
		Id:        uuid.New(),
		EventType: envelope.Type,
		Payload:   envelope.Payload,
		CreatedAt: time.Now(),
	}
	if !envelope.OccurredAt.IsZero() {
		record.CreatedAt = envelope.OccurredAt
	}

	if err := uow.SystemLogRepository().Create(ctx, &record); err != nil {
		log.Printf("[ERROR] Failed to store event %s: %v", envelope.Type, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
