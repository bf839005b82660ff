package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
)

// storageFailure classifies an error returned by the unit of work or a repository.
// Lookups that found nothing keep their ObjectNotFoundError; anything else is an
// infrastructure failure reported as StorageFailureError.
func storageFailure(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, errs.ErrStorageFailure) {
		return err
	}
	return errs.NewStorageFailureError(operation, err)
}
