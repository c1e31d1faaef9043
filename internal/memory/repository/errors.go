package repository

import "errors"

var (
	ErrFailedToUpsert = errors.New("failed to upsert record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToSync   = errors.New("failed to sync records")
	ErrFailedToDelete = errors.New("failed to delete records")
)
