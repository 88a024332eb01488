package events

import (
	"context"

	"installer-track/internal/domain/inventory"
)

// StatusEvent describes a device status transition for downstream
// consumers (dispatch dashboards, sync jobs).
type StatusEvent struct {
	DeviceID  string `json:"deviceId"`
	Branch    string `json:"branch"`
	OldStatus string `json:"oldStatus"`
	NewStatus string `json:"newStatus"`
}

// Publisher emits device status-change events. Publishing is best-effort:
// implementations log failures instead of propagating them, so a broker
// outage never fails the mutation that triggered the event.
type Publisher interface {
	DeviceStatusChanged(ctx context.Context, deviceID, branch string, from, to inventory.Status)
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) DeviceStatusChanged(context.Context, string, string, inventory.Status, inventory.Status) {
}
