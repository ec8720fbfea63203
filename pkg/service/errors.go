package service

import (
	"errors"
	"fmt"

	"github.com/cuemby/cookshow/pkg/storage"
)

// Error kinds returned by every service. Match them with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("already exists")
	ErrOperationFailed = errors.New("operation failed")
	ErrInvalidArgument = errors.New("invalid argument")
)

// storeError converts a storage error into a service error kind.
// storage.ErrNotFound becomes ErrNotFound; anything else is ErrOperationFailed.
func storeError(err error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%s: %w", msg, ErrNotFound)
	}
	return fmt.Errorf("%s: %w: %w", msg, ErrOperationFailed, err)
}

func notFound(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}

func conflict(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrConflict)
}
