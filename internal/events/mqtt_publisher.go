package events

import (
	"context"
	"encoding/json"
	"fmt"

	"installer-track/internal/domain/inventory"
	"installer-track/internal/logger"
	"installer-track/pkg/mqtt"

	"go.uber.org/zap"
)

// MQTTPublisher publishes status events to <prefix>/<branch>/<deviceId>
// with QoS 1.
type MQTTPublisher struct {
	client      *mqtt.Client
	topicPrefix string
}

func NewMQTTPublisher(client *mqtt.Client, topicPrefix string) *MQTTPublisher {
	return &MQTTPublisher{
		client:      client,
		topicPrefix: topicPrefix,
	}
}

func (p *MQTTPublisher) DeviceStatusChanged(ctx context.Context, deviceID, branch string, from, to inventory.Status) {
	event := StatusEvent{
		DeviceID:  deviceID,
		Branch:    branch,
		OldStatus: from.String(),
		NewStatus: to.String(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal status event", zap.Error(err))
		return
	}

	topic := fmt.Sprintf("%s/%s/%s", p.topicPrefix, branch, deviceID)
	if err := p.client.Publish(topic, 1, false, payload); err != nil {
		logger.Warn("Failed to publish status event",
			zap.String("topic", topic),
			zap.String("device_id", deviceID),
			zap.Error(err),
		)
	}
}
