package postgres

import (
	"context"
	"errors"
	"fmt"

	domainInventory "installer-track/internal/domain/inventory"
	"installer-track/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

// DeviceRepository implements domain inventory.Repository over the
// inventory store.
type DeviceRepository struct {
	db *DB
}

func NewDeviceRepository(db *DB) domainInventory.Repository {
	return &DeviceRepository{db: db}
}

func (r *DeviceRepository) ListByBranch(ctx context.Context, branch string) ([]*domainInventory.DeviceRecord, error) {
	var dbModels []models.DeviceModel
	err := r.db.DB.WithContext(ctx).
		Where("group_account = ?", branch).
		Order("device_id DESC").
		Find(&dbModels).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	records := make([]*domainInventory.DeviceRecord, len(dbModels))
	for i := range dbModels {
		records[i] = toDeviceEntity(&dbModels[i])
	}

	return records, nil
}

func (r *DeviceRepository) GetByIDAndBranch(ctx context.Context, deviceID, branch string) (*domainInventory.DeviceRecord, error) {
	var dbModel models.DeviceModel
	err := r.db.DB.WithContext(ctx).
		Where("device_id = ? AND group_account = ?", deviceID, branch).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainInventory.ErrDeviceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	return toDeviceEntity(&dbModel), nil
}

// UpdateStatus performs a conditional update: the row must still hold one
// of the expected prior statuses, otherwise zero rows are affected and
// ErrStatusChanged is returned. This closes the lost-update window between
// two concurrent transitions on the same device.
func (r *DeviceRepository) UpdateStatus(ctx context.Context, deviceID, branch string, from []domainInventory.Status, to domainInventory.Status) error {
	condition, args := statusCondition(from)
	db := r.db.DB.WithContext(ctx).
		Model(&models.DeviceModel{}).
		Where("device_id = ? AND group_account = ?", deviceID, branch).
		Where(condition, args...)

	result := db.Update("isinstalled", to.Flag())
	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainInventory.ErrStatusChanged
	}

	return nil
}

// statusCondition builds the WHERE fragment matching any of the expected
// prior values of the nullable status column.
func statusCondition(from []domainInventory.Status) (string, []interface{}) {
	clauses := make([]string, 0, len(from))
	args := make([]interface{}, 0, len(from))
	for _, s := range from {
		if flag := s.Flag(); flag == nil {
			clauses = append(clauses, "isinstalled IS NULL")
		} else {
			clauses = append(clauses, "isinstalled = ?")
			args = append(args, *flag)
		}
	}

	condition := ""
	for i, c := range clauses {
		if i > 0 {
			condition += " OR "
		}
		condition += c
	}
	return "(" + condition + ")", args
}

func toDeviceEntity(m *models.DeviceModel) *domainInventory.DeviceRecord {
	return &domainInventory.DeviceRecord{
		DeviceID:     m.DeviceID,
		GroupAccount: m.GroupAccount,
		PhoneNumber:  m.PhoneNumber,
		Status:       domainInventory.StatusFromFlag(m.Installed),
	}
}
