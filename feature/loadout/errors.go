package loadout

import "errors"

var (
	// ErrInvalidRequest marks errors caused by the request content.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrBackupNotFound is returned when a backup id has no stored object.
	ErrBackupNotFound = errors.New("backup not found")
)
