package nsq

import (
	"fmt"
	"os"
	"strings"

	"github.com/recab/recab/internal/pkg/constants"
	"github.com/recab/recab/internal/pkg/logger"
	"github.com/recab/recab/internal/pkg/models"
	nsqpkg "github.com/recab/recab/internal/pkg/nsq"
	"github.com/recab/recab/services/matching"
)

// nsq channel names are capped at 64 characters
const maxHostLen = 40

// rideRequestEvent is the envelope published on ride_request.created
type rideRequestEvent struct {
	Type string             `json:"type"`
	Data models.RideRequest `json:"data"`
}

// StreamHandler fans ride request events out to the push sessions held by
// this process
type StreamHandler struct {
	notifier  matching.Notifier
	consumers []*nsqpkg.Consumer
}

// NewStreamHandler creates a new ride request stream handler
func NewStreamHandler(notifier matching.Notifier) *StreamHandler {
	return &StreamHandler{notifier: notifier}
}

// PushChannel returns the ephemeral channel of this host so every instance
// sees every event
func PushChannel() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "recab"
	}
	host = strings.NewReplacer(".", "-", ":", "-").Replace(host)
	if len(host) > maxHostLen {
		host = host[:maxHostLen]
	}
	return fmt.Sprintf("push-%s#ephemeral", host)
}

// InitNSQConsumers subscribes to the ride request topics
func (h *StreamHandler) InitNSQConsumers(address string) error {
	consumer, err := nsqpkg.NewConsumer(constants.TopicRideRequestCreated, PushChannel(), address, h.HandleRideRequestCreated)
	if err != nil {
		return fmt.Errorf("failed to subscribe to ride request events: %w", err)
	}
	h.consumers = append(h.consumers, consumer)
	return nil
}

// HandleRideRequestCreated pushes a new request to the driver's sessions.
// Delivery is best effort, so only malformed messages fail.
func (h *StreamHandler) HandleRideRequestCreated(data []byte) error {
	var event rideRequestEvent
	if err := nsqpkg.UnmarshalMessage(data, &event); err != nil {
		logger.Warn("Dropping malformed ride request event", logger.Err(err))
		return nil
	}
	if event.Data.ID == "" || event.Data.DriverID == "" {
		logger.Warn("Dropping ride request event without ids",
			logger.String("type", event.Type))
		return nil
	}

	delivered, err := h.notifier.Notify(event.Data.DriverID, constants.EventRideRequestCreated, event.Data)
	if err != nil {
		logger.Warn("Failed to push ride request",
			logger.String("request_id", event.Data.ID),
			logger.Err(err))
		return nil
	}
	logger.Debug("Ride request pushed",
		logger.String("request_id", event.Data.ID),
		logger.Int("sessions", delivered))
	return nil
}

// Stop stops every consumer
func (h *StreamHandler) Stop() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
	h.consumers = nil
}
