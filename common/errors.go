package common

import "errors"

var (
	ErrorInvalidValue = errors.New("invalid value")

	// ErrorInvalidArgument is returned for malformed requests, e.g. a
	// significant figure count below one or a probability outside (0, 1).
	ErrorInvalidArgument = errors.New("invalid argument")

	// ErrorPreconditionViolation marks caller bugs such as looking up a
	// positive value in an empty cohn table.
	ErrorPreconditionViolation = errors.New("precondition violation")

	// ErrorDataQuality is non-fatal, it is reported as a warning.
	ErrorDataQuality = errors.New("data quality warning")

	ErrorSingularFit = errors.New("regression is singular or under-determined")
)
