package service

import "errors"

var (
	// ErrRecordNotFound is returned when no roster record carries the
	// requested identifier.
	ErrRecordNotFound = errors.New("record not found")

	// ErrCategoryNotFound is returned when no roster record belongs to the
	// requested category.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidQuery is returned when a lookup is asked for text the
	// classifier did not accept.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrForbidden is returned when a caller outside the privileged set asks
	// for a privileged operation.
	ErrForbidden = errors.New("caller is not authorized")

	// ErrVersionIsNotSpecified is returned when the application version is
	// empty.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
