package inventory

// Status represents the lifecycle state of a device record. The inventory
// table stores it as a nullable boolean (NULL = pending, false = processing,
// true = rejected); the enum exists so the rest of the code never has to
// treat NULL as a value.
type Status int

const (
	StatusPending Status = iota
	StatusProcessing
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusProcessing:
		return "Processing"
	case StatusRejected:
		return "Rejected"
	default:
		return "Pending"
	}
}

// StatusFromFlag maps the legacy column value to a Status.
func StatusFromFlag(flag *bool) Status {
	switch {
	case flag == nil:
		return StatusPending
	case *flag:
		return StatusRejected
	default:
		return StatusProcessing
	}
}

// Flag maps a Status back to the legacy column value.
func (s Status) Flag() *bool {
	switch s {
	case StatusProcessing:
		f := false
		return &f
	case StatusRejected:
		f := true
		return &f
	default:
		return nil
	}
}

// DeviceRecord represents an inventory unit owned by exactly one branch.
type DeviceRecord struct {
	DeviceID     string
	GroupAccount string
	PhoneNumber  string
	Status       Status
}

// CanAcknowledge reports whether the record may transition to Processing.
// Acknowledge only moves a pending device.
func (d *DeviceRecord) CanAcknowledge() bool {
	return d.Status == StatusPending
}

// CanReject reports whether the record may transition to Rejected.
// Rejecting an already-processing device is allowed; rejected is terminal.
func (d *DeviceRecord) CanReject() bool {
	return d.Status != StatusRejected
}
