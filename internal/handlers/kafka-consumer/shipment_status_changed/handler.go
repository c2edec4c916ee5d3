package shipment_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"fleetops/internal/entities"
	shipmentservice "fleetops/internal/service/shipment"
	tripservice "fleetops/internal/service/trip"
	"fleetops/pkg/logger"
)

type statusEvent struct {
	ShipmentID int64  `json:"shipment_id"`
	Status     string `json:"status"`
}

type Handler struct {
	eventsService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, eventsService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		eventsService:            eventsService,
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
				// Messages() закрыт — выходим
				h.log.Info("shipment.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("shipment.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("shipment.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("shipment", event.ShipmentID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("shipment.status.changed processing")

	status := entities.ShipmentStatusType(event.Status)

	shipment, err := h.eventsService.ProcessShipmentStatusChange(ctx, event.ShipmentID, status)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, shipmentservice.ErrShipmentNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler unknown shipment")

		case errors.Is(err, tripservice.ErrTripNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler no trip for shipment")

		case errors.Is(err, tripservice.ErrTripNotActive) || errors.Is(err, tripservice.ErrTripFinished):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler trip state mismatch")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler failed to process shipment")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("shipment", shipment.ID),
		logger.NewField("event_status", event.Status),
		logger.NewField("current_status", shipment.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("shipment.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
