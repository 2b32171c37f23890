package service

import "errors"

var (
	// ErrUnsupportedFormat is returned before any extraction I/O when the
	// uploaded file's extension is not on the allow-list.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrExtractionFailed covers I/O or parser-level failures while reading
	// a file's native format.
	ErrExtractionFailed = errors.New("failed to extract text from file")

	// ErrCompletionTimeout is returned when the completion call loses the
	// race against its deadline. It is never retried here.
	ErrCompletionTimeout = errors.New("completion request timed out")

	// ErrCompletionUnavailable covers network or service failures reaching
	// the completion service.
	ErrCompletionUnavailable = errors.New("completion service unavailable")

	// ErrMalformedCompletion is returned when the model's output does not
	// parse as the expected schema. The offending payload is logged, never
	// surfaced to the end user.
	ErrMalformedCompletion = errors.New("completion response does not match expected schema")

	// ErrNoRecords is returned by analysis when the selected range is empty.
	ErrNoRecords = errors.New("no records in the requested range")

	// ErrReviewNotFound is returned when a review session lookup misses the
	// owner scope.
	ErrReviewNotFound = errors.New("review session not found")

	// ErrDefaultCategory is returned on attempts to delete a seeded default.
	ErrDefaultCategory = errors.New("default categories cannot be deleted")

	// ErrMissingFields is returned when a create or update request omits a
	// required field.
	ErrMissingFields = errors.New("required fields are missing")
)
