package inventory

import (
	"context"
	"errors"
	"fmt"

	domainInventory "installer-track/internal/domain/inventory"
	"installer-track/internal/events"
	"installer-track/internal/logger"

	"go.uber.org/zap"
)

// ConflictError reports a status transition that is not permitted from the
// device's current state. The message is client-facing.
type ConflictError struct {
	Message       string
	CurrentStatus domainInventory.Status
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Service implements branch-scoped inventory use cases.
type Service struct {
	deviceRepo domainInventory.Repository
	publisher  events.Publisher
}

func NewService(deviceRepo domainInventory.Repository, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Service{
		deviceRepo: deviceRepo,
		publisher:  publisher,
	}
}

// ListByBranch returns all device records for a branch along with the
// status distribution. A branch with no devices yields an empty list, not
// an error.
func (s *Service) ListByBranch(ctx context.Context, branch string) ([]DeviceResponse, StatusSummary, error) {
	records, err := s.deviceRepo.ListByBranch(ctx, branch)
	if err != nil {
		return nil, StatusSummary{}, fmt.Errorf("failed to list devices for branch %s: %w", branch, err)
	}

	devices := make([]DeviceResponse, len(records))
	var summary StatusSummary
	for i, record := range records {
		devices[i] = toDeviceResponse(record)
		switch record.Status {
		case domainInventory.StatusProcessing:
			summary.Processing++
		case domainInventory.StatusRejected:
			summary.Rejected++
		default:
			summary.Pending++
		}
	}

	logger.Debug("Fetched branch inventory",
		zap.String("branch", branch),
		zap.Int("device_count", len(devices)),
		zap.Int("pending", summary.Pending),
		zap.Int("processing", summary.Processing),
		zap.Int("rejected", summary.Rejected),
	)

	return devices, summary, nil
}

// Acknowledge moves a pending device to Processing. A device that already
// has a status set is reported as a conflict, not mutated.
func (s *Service) Acknowledge(ctx context.Context, deviceID, branch string) (*TransitionResponse, error) {
	device, err := s.deviceRepo.GetByIDAndBranch(ctx, deviceID, branch)
	if err != nil {
		return nil, err
	}

	if !device.CanAcknowledge() {
		return nil, &ConflictError{
			Message:       fmt.Sprintf("Device is already %s.", device.Status),
			CurrentStatus: device.Status,
		}
	}

	err = s.deviceRepo.UpdateStatus(ctx, deviceID, branch,
		[]domainInventory.Status{domainInventory.StatusPending},
		domainInventory.StatusProcessing,
	)
	if err != nil {
		if errors.Is(err, domainInventory.ErrStatusChanged) {
			return nil, s.conflictAfterRace(ctx, deviceID, branch)
		}
		return nil, err
	}

	s.publisher.DeviceStatusChanged(ctx, deviceID, branch,
		domainInventory.StatusPending, domainInventory.StatusProcessing)

	logger.Info("Device acknowledged",
		zap.String("device_id", deviceID),
		zap.String("branch", branch),
		zap.String("event", "device_acknowledged"),
	)

	return &TransitionResponse{
		Message:   "Device acknowledged and set to Processing.",
		DeviceID:  deviceID,
		NewStatus: domainInventory.StatusProcessing.String(),
	}, nil
}

// Reject moves a device to Rejected. Unlike Acknowledge this is allowed
// from Processing as well; only an already-rejected device conflicts.
func (s *Service) Reject(ctx context.Context, deviceID, branch string) (*TransitionResponse, error) {
	device, err := s.deviceRepo.GetByIDAndBranch(ctx, deviceID, branch)
	if err != nil {
		return nil, err
	}

	if !device.CanReject() {
		return nil, &ConflictError{
			Message:       "Device is already rejected.",
			CurrentStatus: device.Status,
		}
	}

	err = s.deviceRepo.UpdateStatus(ctx, deviceID, branch,
		[]domainInventory.Status{domainInventory.StatusPending, domainInventory.StatusProcessing},
		domainInventory.StatusRejected,
	)
	if err != nil {
		if errors.Is(err, domainInventory.ErrStatusChanged) {
			return nil, s.conflictAfterRace(ctx, deviceID, branch)
		}
		return nil, err
	}

	s.publisher.DeviceStatusChanged(ctx, deviceID, branch,
		device.Status, domainInventory.StatusRejected)

	logger.Info("Device rejected",
		zap.String("device_id", deviceID),
		zap.String("branch", branch),
		zap.String("event", "device_rejected"),
	)

	return &TransitionResponse{
		Message:   "Device rejected successfully.",
		DeviceID:  deviceID,
		NewStatus: domainInventory.StatusRejected.String(),
	}, nil
}

// conflictAfterRace re-reads a device whose conditional update affected
// zero rows and reports the status the concurrent winner left behind.
func (s *Service) conflictAfterRace(ctx context.Context, deviceID, branch string) error {
	current, err := s.deviceRepo.GetByIDAndBranch(ctx, deviceID, branch)
	if err != nil {
		return err
	}

	logger.Warn("Status transition lost a concurrent update",
		zap.String("device_id", deviceID),
		zap.String("branch", branch),
		zap.String("current_status", current.Status.String()),
	)

	return &ConflictError{
		Message:       fmt.Sprintf("Device is already %s.", current.Status),
		CurrentStatus: current.Status,
	}
}
