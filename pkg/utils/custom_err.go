package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDestination = errors.New("destination not supported")
	ErrInvalidDateRange   = errors.New("invalid date range")
	ErrInvalidBudget      = errors.New("invalid budget")

	ErrGenerationUnavailable  = errors.New("generation model unavailable")
	ErrUnparsableGeneration   = errors.New("could not parse generated output")
	ErrInvalidGenerationShape = errors.New("generated output has invalid structure")

	ErrInsufficientCapacity = errors.New("not enough rooms available")
	ErrPlaceNotFound        = errors.New("place not found")
	ErrAttractionNotFound   = errors.New("attraction not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrProgramNotFound      = errors.New("program not found")

	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidInput  = errors.New("invalid input")
	ErrDatabaseError = errors.New("database error")
)

// RawPreviewLimit bounds how much repaired model output is echoed back to the
// caller when parsing fails.
const RawPreviewLimit = 1000

// GenerationParseError reports a repaired model response that still failed to
// parse. It carries a bounded preview of the repaired text for diagnosis and
// unwraps to ErrUnparsableGeneration so error handling stays sentinel-based.
type GenerationParseError struct {
	Preview string
	Err     error
}

func NewGenerationParseError(repaired string, err error) *GenerationParseError {
	preview := repaired
	if len(preview) > RawPreviewLimit {
		preview = preview[:RawPreviewLimit]
	}
	return &GenerationParseError{Preview: preview, Err: err}
}

func (e *GenerationParseError) Error() string {
	return fmt.Sprintf("%v: %v", ErrUnparsableGeneration, e.Err)
}

func (e *GenerationParseError) Unwrap() error {
	return ErrUnparsableGeneration
}
