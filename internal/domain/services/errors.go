package services

import "errors"

var (
	// ErrSourceMovementRequired means neither the template nor the options name a source movement.
	ErrSourceMovementRequired = errors.New("source movement id is required")
	// ErrSourceMovementNotFound means the source movement is not in the dataset.
	ErrSourceMovementNotFound = errors.New("source movement not found")
)

var (
	// ErrRecordIDRequired means a record without an id was put into a dataset.
	ErrRecordIDRequired = errors.New("record id is required")
	// ErrUnknownCollection means a collection name or record type is not part of a dataset.
	ErrUnknownCollection = errors.New("unknown collection")
)
