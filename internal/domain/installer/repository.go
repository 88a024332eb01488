package installer

import "context"

// Repository defines read access to the credential store.
type Repository interface {
	// GetByNumberAndCode looks up an installer by login number and code.
	// Returns ErrInstallerNotFound when no record matches.
	GetByNumberAndCode(ctx context.Context, number, code string) (*Installer, error)
}
