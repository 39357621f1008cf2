package spacedhex

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when the input cannot be processed at all,
	// such as malformed hex text handed to Decode.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBufferTooSmall is returned when the destination cannot hold the
	// encoded text plus its terminator.
	ErrBufferTooSmall = errors.New("output buffer too small")
)

// BufferTooSmallError reports the capacity an encode needed and what it got.
type BufferTooSmallError struct {
	Need int
	Have int
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("%s: need %d bytes, have %d", ErrBufferTooSmall, e.Need, e.Have)
}

func (e *BufferTooSmallError) Unwrap() error { return ErrBufferTooSmall }

// InvalidInputError points at the offset in the text where decoding failed.
type InvalidInputError struct {
	Offset int
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", ErrInvalidInput, e.Offset, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }
