package inventory

import (
	domainInventory "installer-track/internal/domain/inventory"
)

// DeviceResponse is a single inventory row in the legacy wire shape.
// isinstalled keeps the tri-state column encoding the clients already
// parse: null = pending, false = processing, true = rejected.
type DeviceResponse struct {
	DeviceID     string `json:"deviceId"`
	GroupAccount string `json:"groupAccount"`
	PhoneNumber  string `json:"phoneNumber"`
	Installed    *bool  `json:"isinstalled"`
}

// StatusSummary holds per-branch counts by status.
type StatusSummary struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Rejected   int `json:"rejected"`
}

// TransitionResponse is the payload for a successful acknowledge/reject.
type TransitionResponse struct {
	Message   string `json:"message"`
	DeviceID  string `json:"deviceId"`
	NewStatus string `json:"newStatus"`
}

func toDeviceResponse(d *domainInventory.DeviceRecord) DeviceResponse {
	return DeviceResponse{
		DeviceID:     d.DeviceID,
		GroupAccount: d.GroupAccount,
		PhoneNumber:  d.PhoneNumber,
		Installed:    d.Status.Flag(),
	}
}
