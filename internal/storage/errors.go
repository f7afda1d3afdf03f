package storage

import "errors"

var (
	// ErrInvalidConfig is returned when the archive settings are incomplete.
	ErrInvalidConfig = errors.New("invalid archive configuration")

	// ErrBucketUnavailable is returned when the bucket can be neither found
	// nor created.
	ErrBucketUnavailable = errors.New("archive bucket is unavailable")

	// ErrUploadFailed is returned when an object upload fails.
	ErrUploadFailed = errors.New("archive upload failed")
)
