package reports

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedName reports a file name that does not follow the report
	// naming convention.
	ErrMalformedName = errors.New("malformed report name")
	// ErrSampleSize reports a repeat request larger than the sampling pool.
	ErrSampleSize = errors.New("sample larger than population")
)

// MalformedNameError identifies the name and the field that could not be
// extracted.
type MalformedNameError struct {
	Name  string
	Field string
}

func (e *MalformedNameError) Error() string {
	return fmt.Sprintf("%s %q: missing or invalid %s", ErrMalformedName, e.Name, e.Field)
}

func (e *MalformedNameError) Is(target error) bool {
	return target == ErrMalformedName
}

// SampleSizeError is returned when more repeats are requested than the pool
// holds.
type SampleSizeError struct {
	Requested int
	Available int
}

func (e *SampleSizeError) Error() string {
	return fmt.Sprintf("%s: requested %d, available %d", ErrSampleSize, e.Requested, e.Available)
}

func (e *SampleSizeError) Is(target error) bool {
	return target == ErrSampleSize
}
