package installer

import "errors"

var (
	ErrInstallerNotFound = errors.New("installer not found")
)
