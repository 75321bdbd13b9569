package nsq

import (
	"time"

	"github.com/recab/recab/internal/pkg/logger"
	"github.com/recab/recab/internal/pkg/models"
)

// PublishEvent wraps data in an event envelope and publishes it.
// Events go out after the state change committed, so a failed publish is
// logged and otherwise ignored.
func PublishEvent(p Publisher, topic string, data interface{}) {
	if p == nil {
		return
	}
	event := models.Event{
		Type:       topic,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
	if err := p.Publish(topic, event); err != nil {
		logger.Warn("Failed to publish event",
			logger.String("topic", topic),
			logger.Err(err))
	}
}
