package jpeg

import (
	"errors"
	"fmt"
)

var (
	ErrMarkerTooFewBytes  = errors.New("jpeg: too few bytes to be a marker")
	ErrMarkerTooManyBytes = errors.New("jpeg: too many bytes to be a marker")

	// ErrNoLengthBytes means a length-delimited marker was not
	// followed by the two bytes its length field needs.
	ErrNoLengthBytes = errors.New("jpeg: marker requires a length field but fewer than two bytes remain")
)

// UnknownCodeError reports a two-byte code outside the known marker set.
type UnknownCodeError struct {
	B0, B1 byte
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("jpeg: %02x %02x is not a known marker", e.B0, e.B1)
}

// TruncatedError reports a buffer too short to hold even a marker.
type TruncatedError struct {
	N int
}

func (e *TruncatedError) Error() string {
	if e.N == 0 {
		return "jpeg: cannot read a segment from an empty slice"
	}
	return fmt.Sprintf("jpeg: cannot read a segment from a slice of only %d byte(s)", e.N)
}

// InvalidMarkerError wraps the marker decode failure at the head of a
// segment. The cause is always one of the marker errors above.
type InvalidMarkerError struct {
	Cause error
}

func (e *InvalidMarkerError) Error() string {
	return fmt.Sprintf("jpeg: segment begins with an invalid marker: %v", e.Cause)
}

func (e *InvalidMarkerError) Unwrap() error { return e.Cause }

// BadLengthError reports a length field too small to cover itself.
type BadLengthError struct {
	Length int
}

func (e *BadLengthError) Error() string {
	return fmt.Sprintf("jpeg: segment length %d is less than the two bytes of the length field", e.Length)
}

// ShortPayloadError reports a payload cut off by the end of the buffer.
type ShortPayloadError struct {
	Expected int // payload bytes the length field promised
	Actual   int // payload bytes actually remaining
}

func (e *ShortPayloadError) Error() string {
	return fmt.Sprintf("jpeg: segment wants %d payload bytes but only %d remain", e.Expected, e.Actual)
}

// StreamError reports where and why a whole-buffer parse stopped.
type StreamError struct {
	BytesParsed    int
	SegmentsParsed int
	Cause          error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("jpeg: after parsing %d bytes into %d segments: %v",
		e.BytesParsed, e.SegmentsParsed, e.Cause)
}

func (e *StreamError) Unwrap() error { return e.Cause }
