package inventory

import (
	"context"
	"testing"

	domainInventory "installer-track/internal/domain/inventory"
	"installer-track/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	_ = logger.Init("production")
}

type MockDeviceRepository struct {
	mock.Mock
}

func (m *MockDeviceRepository) ListByBranch(ctx context.Context, branch string) ([]*domainInventory.DeviceRecord, error) {
	args := m.Called(ctx, branch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainInventory.DeviceRecord), args.Error(1)
}

func (m *MockDeviceRepository) GetByIDAndBranch(ctx context.Context, deviceID, branch string) (*domainInventory.DeviceRecord, error) {
	args := m.Called(ctx, deviceID, branch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainInventory.DeviceRecord), args.Error(1)
}

func (m *MockDeviceRepository) UpdateStatus(ctx context.Context, deviceID, branch string, from []domainInventory.Status, to domainInventory.Status) error {
	args := m.Called(ctx, deviceID, branch, from, to)
	return args.Error(0)
}

type recordedEvent struct {
	deviceID string
	branch   string
	from     domainInventory.Status
	to       domainInventory.Status
}

type recordingPublisher struct {
	events []recordedEvent
}

func (p *recordingPublisher) DeviceStatusChanged(ctx context.Context, deviceID, branch string, from, to domainInventory.Status) {
	p.events = append(p.events, recordedEvent{deviceID, branch, from, to})
}

func pending(deviceID, branch string) *domainInventory.DeviceRecord {
	return &domainInventory.DeviceRecord{
		DeviceID:     deviceID,
		GroupAccount: branch,
		PhoneNumber:  "0400000000",
		Status:       domainInventory.StatusPending,
	}
}

func TestListByBranchEmptyIsNotAnError(t *testing.T) {
	repo := new(MockDeviceRepository)
	svc := NewService(repo, nil)

	repo.On("ListByBranch", mock.Anything, "EMPTY").
		Return([]*domainInventory.DeviceRecord{}, nil)

	devices, summary, err := svc.ListByBranch(context.Background(), "EMPTY")
	require.NoError(t, err)
	assert.Empty(t, devices)
	assert.Equal(t, StatusSummary{}, summary)
}

func TestListByBranchSummary(t *testing.T) {
	repo := new(MockDeviceRepository)
	svc := NewService(repo, nil)

	records := []*domainInventory.DeviceRecord{
		{DeviceID: "DEV-3", GroupAccount: "NORTH", Status: domainInventory.StatusPending},
		{DeviceID: "DEV-2", GroupAccount: "NORTH", Status: domainInventory.StatusProcessing},
		{DeviceID: "DEV-1", GroupAccount: "NORTH", Status: domainInventory.StatusRejected},
	}
	repo.On("ListByBranch", mock.Anything, "NORTH").Return(records, nil)

	devices, summary, err := svc.ListByBranch(context.Background(), "NORTH")
	require.NoError(t, err)
	require.Len(t, devices, 3)

	assert.Equal(t, StatusSummary{Pending: 1, Processing: 1, Rejected: 1}, summary)

	// Wire encoding of the tri-state flag.
	assert.Nil(t, devices[0].Installed)
	require.NotNil(t, devices[1].Installed)
	assert.False(t, *devices[1].Installed)
	require.NotNil(t, devices[2].Installed)
	assert.True(t, *devices[2].Installed)
}

func TestAcknowledgePending(t *testing.T) {
	repo := new(MockDeviceRepository)
	pub := &recordingPublisher{}
	svc := NewService(repo, pub)

	repo.On("GetByIDAndBranch", mock.Anything, "DEV-1", "NORTH").
		Return(pending("DEV-1", "NORTH"), nil)
	repo.On("UpdateStatus", mock.Anything, "DEV-1", "NORTH",
		[]domainInventory.Status{domainInventory.StatusPending},
		domainInventory.StatusProcessing).Return(nil)

	resp, err := svc.Acknowledge(context.Background(), "DEV-1", "NORTH")
	require.NoError(t, err)

	assert.Equal(t, "Device acknowledged and set to Processing.", resp.Message)
	assert.Equal(t, "DEV-1", resp.DeviceID)
	assert.Equal(t, "Processing", resp.NewStatus)

	require.Len(t, pub.events, 1)
	assert.Equal(t, domainInventory.StatusProcessing, pub.events[0].to)
}

func TestAcknowledgeAlreadyProcessing(t *testing.T) {
	repo := new(MockDeviceRepository)
	svc := NewService(repo, nil)

	device := pending("DEV-1", "NORTH")
	device.Status = domainInventory.StatusProcessing
	repo.On("GetByIDAndBranch", mock.Anything, "DEV-1", "NORTH").Return(device, nil)

	_, err := svc.Acknowledge(context.Background(), "DEV-1", "NORTH")

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Device is already Processing.", conflict.Message)
	repo.AssertNotCalled(t, "UpdateStatus")
}

func TestAcknowledgeAlreadyRejected(t *testing.T) {
	repo := new(MockDeviceRepository)
	svc := NewService(repo, nil)

	device := pending("DEV-1", "NORTH")
	device.Status = domainInventory.StatusRejected
	repo.On("GetByIDAndBranch", mock.Anything, "DEV-1", "NORTH").Return(device, nil)

	_, err := svc.Acknowledge(context.Background(), "DEV-1", "NORTH")

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Device is already Rejected.", conflict.Message)
}

// Wrong branch is indistinguishable from an absent device.
func TestAcknowledgeCrossBranchIsNotFound(t *testing.T) {
	repo := new(MockDeviceRepository)
	svc := NewService(repo, nil)

	repo.On("GetByIDAndBranch", mock.Anything, "DEV-1", "SOUTH").
		Return(nil, domainInventory.ErrDeviceNotFound)

	_, err := svc.Acknowledge(context.Background(), "DEV-1", "SOUTH")
	assert.ErrorIs(t, err, domainInventory.ErrDeviceNotFound)
}

// Two concurrent acknowledges both read pending; the loser's conditional
// update affects zero rows and must surface as a conflict, not a silent
// duplicate success.
func TestAcknowledgeLosesRace(t *testing.T) {
	repo := new(MockDeviceRepository)
	pub := &recordingPublisher{}
	svc := NewService(repo, pub)

	won := pending("DEV-1", "NORTH")
	won.Status = domainInventory.StatusProcessing

	repo.On("GetByIDAndBranch", mock.Anything, "DEV-1", "NORTH").
		Return(pending("DEV-1", "NORTH"), nil).Once()
	repo.On("UpdateStatus", mock.Anything, "DEV-1", "NORTH",
		[]domainInventory.Status{domainInventory.StatusPending},
		domainInventory.StatusProcessing).Return(domainInventory.ErrStatusChanged)
	repo.On("GetByIDAndBranch", mock.Anything, "DEV-1", "NORTH").
		Return(won, nil).Once()

	_, err := svc.Acknowledge(context.Background(), "DEV-1", "NORTH")

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Device is already Processing.", conflict.Message)
	assert.Empty(t, pub.events)
}

func TestRejectPending(t *testing.T) {
	repo := new(MockDeviceRepository)
	svc := NewService(repo, nil)

	repo.On("GetByIDAndBranch", mock.Anything, "DEV-1", "NORTH").
		Return(pending("DEV-1", "NORTH"), nil)
	repo.On("UpdateStatus", mock.Anything, "DEV-1", "NORTH",
		[]domainInventory.Status{domainInventory.StatusPending, domainInventory.StatusProcessing},
		domainInventory.StatusRejected).Return(nil)

	resp, err := svc.Reject(context.Background(), "DEV-1", "NORTH")
	require.NoError(t, err)

	assert.Equal(t, "Device rejected successfully.", resp.Message)
	assert.Equal(t, "Rejected", resp.NewStatus)
}

// The asymmetry law: rejecting an already-processing device succeeds,
// while acknowledging it would not.
func TestRejectProcessingIsAllowed(t *testing.T) {
	repo := new(MockDeviceRepository)
	pub := &recordingPublisher{}
	svc := NewService(repo, pub)

	device := pending("DEV-1", "NORTH")
	device.Status = domainInventory.StatusProcessing
	repo.On("GetByIDAndBranch", mock.Anything, "DEV-1", "NORTH").Return(device, nil)
	repo.On("UpdateStatus", mock.Anything, "DEV-1", "NORTH",
		[]domainInventory.Status{domainInventory.StatusPending, domainInventory.StatusProcessing},
		domainInventory.StatusRejected).Return(nil)

	resp, err := svc.Reject(context.Background(), "DEV-1", "NORTH")
	require.NoError(t, err)
	assert.Equal(t, "Rejected", resp.NewStatus)

	require.Len(t, pub.events, 1)
	assert.Equal(t, domainInventory.StatusProcessing, pub.events[0].from)
	assert.Equal(t, domainInventory.StatusRejected, pub.events[0].to)
}

func TestRejectAlreadyRejected(t *testing.T) {
	repo := new(MockDeviceRepository)
	svc := NewService(repo, nil)

	device := pending("DEV-1", "NORTH")
	device.Status = domainInventory.StatusRejected
	repo.On("GetByIDAndBranch", mock.Anything, "DEV-1", "NORTH").Return(device, nil)

	_, err := svc.Reject(context.Background(), "DEV-1", "NORTH")

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Device is already rejected.", conflict.Message)
	repo.AssertNotCalled(t, "UpdateStatus")
}

func TestRejectLosesRace(t *testing.T) {
	repo := new(MockDeviceRepository)
	svc := NewService(repo, nil)

	won := pending("DEV-1", "NORTH")
	won.Status = domainInventory.StatusRejected

	repo.On("GetByIDAndBranch", mock.Anything, "DEV-1", "NORTH").
		Return(pending("DEV-1", "NORTH"), nil).Once()
	repo.On("UpdateStatus", mock.Anything, "DEV-1", "NORTH",
		[]domainInventory.Status{domainInventory.StatusPending, domainInventory.StatusProcessing},
		domainInventory.StatusRejected).Return(domainInventory.ErrStatusChanged)
	repo.On("GetByIDAndBranch", mock.Anything, "DEV-1", "NORTH").
		Return(won, nil).Once()

	_, err := svc.Reject(context.Background(), "DEV-1", "NORTH")

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Device is already Rejected.", conflict.Message)
}
