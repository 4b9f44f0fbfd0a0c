// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"

	"affiliate-hub-be/internal/dto"
	"affiliate-hub-be/internal/pkg/apperror"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService bridges the order pipeline to the ledger: every completed
// order that carried a referral code lands here and becomes a pending
// commission entry.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	commission ICommissionService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	commission ICommissionService,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		commission: commission,
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
	var payload dto.OrderCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal order message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	_, err := cs.commission.RecordCommission(ctx, &dto.RecordCommissionRequest{
		OrderId:        payload.OrderId,
		ReferralCode:   payload.ReferralCode,
		ReferredUserId: payload.ReferredUserId,
		OrderAmount:    payload.OrderAmount,
	})
	if err != nil {
		// Business rejections will not succeed on retry; only infrastructure
		// failures are worth redelivering.
		if _, ok := apperror.KindOf(err); ok {
			log.Printf("[WARN] Order %s not commissionable: %v", payload.OrderId, err)
			msg.Ack()
			return
		}
		log.Printf("[ERROR] Failed to record commission for order %s: %v", payload.OrderId, err)
		msg.Nack()
		return
	}

	log.Printf("[INFO] Commission recorded for order %s", payload.OrderId)
	msg.Ack()
}
