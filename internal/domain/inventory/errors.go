package inventory

import "errors"

var (
	ErrDeviceNotFound = errors.New("device not found")
	// ErrStatusChanged is returned by conditional status updates when the
	// row no longer holds the expected prior status.
	ErrStatusChanged = errors.New("device status changed concurrently")
)
