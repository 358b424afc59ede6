package do_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"fuelops/internal/entities"
	"fuelops/internal/service/cascade"
	"fuelops/internal/service/deliveryorder"
	"fuelops/pkg/logger"
)

// changedEvent is the do.changed topic payload emitted by upstream
// order-entry systems.
type changedEvent struct {
	OrderNo     string `json:"order_no"`
	Kind        string `json:"kind"`
	OldTruckNo  string `json:"old_truck_no,omitempty"`
	NewTruckNo  string `json:"new_truck_no,omitempty"`
	Destination string `json:"destination,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

type Handler struct {
	cascadeService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, cascadeService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		cascadeService:           cascadeService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("do.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Rebalance or consumer group shutdown.
			h.log.Info("do.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one message. A true result stops
// ConsumeClaim so an unprocessed message is redelivered after the
// context cancellation; false moves on to the next message.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event changedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("do.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order_no", event.OrderNo),
		logger.NewField("kind", event.Kind),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("do.changed processing")

	err = h.cascadeService.ApplyChange(ctx, entities.DOChangeEvent{
		OrderNo:     event.OrderNo,
		Kind:        entities.DOChangeKind(event.Kind),
		OldTruckNo:  event.OldTruckNo,
		NewTruckNo:  event.NewTruckNo,
		Destination: event.Destination,
		Reason:      event.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("do.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, cascade.ErrUndefinedChangeKind):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("do.changed handler unknown change kind")

		case errors.Is(err, deliveryorder.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("do.changed handler order not found")

		case errors.Is(err, deliveryorder.ErrAlreadyCancelled):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("do.changed handler order already cancelled")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("do.changed handler failed to apply change")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("do.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
