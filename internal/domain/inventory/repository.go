package inventory

import "context"

// Repository defines the interface for device inventory operations. Every
// operation is scoped to a branch: a device id that exists under another
// branch is indistinguishable from an absent one.
type Repository interface {
	// ListByBranch returns all device records for a branch, ordered by
	// device id descending (string order). An unknown branch yields an
	// empty slice, not an error.
	ListByBranch(ctx context.Context, branch string) ([]*DeviceRecord, error)

	// GetByIDAndBranch returns the record matching both device id and
	// branch, or ErrDeviceNotFound.
	GetByIDAndBranch(ctx context.Context, deviceID, branch string) (*DeviceRecord, error)

	// UpdateStatus moves a device from one status to another. The update is
	// conditional on the row still holding one of the expected prior
	// statuses; if a concurrent writer got there first the update affects
	// zero rows and ErrStatusChanged is returned.
	UpdateStatus(ctx context.Context, deviceID, branch string, from []Status, to Status) error
}
