package postgres

import (
	"context"
	"errors"
	"fmt"

	domainInstaller "installer-track/internal/domain/installer"
	"installer-track/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

// InstallerRepository implements domain installer.Repository over the
// credential store.
type InstallerRepository struct {
	db *DB
}

func NewInstallerRepository(db *DB) domainInstaller.Repository {
	return &InstallerRepository{db: db}
}

func (r *InstallerRepository) GetByNumberAndCode(ctx context.Context, number, code string) (*domainInstaller.Installer, error) {
	var dbModel models.InstallerModel
	err := r.db.DB.WithContext(ctx).
		Where(`"Int_number" = ? AND "Int_code" = ?`, number, code).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainInstaller.ErrInstallerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get installer: %w", err)
	}

	return toInstallerEntity(&dbModel), nil
}

func toInstallerEntity(m *models.InstallerModel) *domainInstaller.Installer {
	return &domainInstaller.Installer{
		ID:       m.ID,
		Name:     m.Name,
		Number:   m.Number,
		Code:     m.Code,
		Password: m.Password,
		Type:     m.Type,
		Branch:   m.Branch,
		City:     m.City,
	}
}
