package anagram

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacity is the root of all capacity errors. A word list that
	// exceeds the configured limits is rejected as a whole.
	ErrCapacity = errors.New("capacity exceeded")
	// ErrTooManyWords is returned when more words are stored than Limits.MaxWords allows.
	ErrTooManyWords = fmt.Errorf("%w: too many words", ErrCapacity)
	// ErrWordTooLong is returned when a valid word is longer than Limits.MaxWordLen.
	ErrWordTooLong = fmt.Errorf("%w: word too long", ErrCapacity)
)

// CapacityError reports the input line where a limit was crossed.
type CapacityError struct {
	Limit int
	Line  int // 1-based
	Err   error
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("line %d: %v (limit %d)", e.Line, e.Err, e.Limit)
}

func (e *CapacityError) Unwrap() error { return e.Err }
