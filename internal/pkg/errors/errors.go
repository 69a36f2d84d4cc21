package errors

import "errors"

var (
	// ErrNotFound is returned when a pivot, entity or user does not exist in the store.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument covers unknown entity kinds and malformed payloads.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnauthorized is returned for bad credentials or a missing/revoked token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the caller's role does not grant the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict is returned for duplicate ids and deletes blocked by references.
	ErrConflict = errors.New("conflict")
)
