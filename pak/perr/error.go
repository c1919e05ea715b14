// Package perr holds the errors reported while reading a pak archive.
//
// Every failure is one of three kinds: an I/O failure against the byte source
// (*IoError, matches ErrIO), a malformed archive (*FormatError, matches ErrFormat
// and one of the reason sentinels), or a caller passing a bad entry index
// (*IndexError, matches ErrIndex). Use errors.Is against the sentinels.
package perr

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrIO     = errors.New("pak: i/o error")
	ErrFormat = errors.New("pak: malformed archive")
	ErrIndex  = errors.New("pak: entry index out of range")

	// ErrClosed is returned when a closed loader is queried.
	ErrClosed = errors.New("pak: archive is closed")
	// ErrInvalid is returned when a loader whose last open failed is queried.
	ErrInvalid = errors.New("pak: archive is invalid")
)

// Format error reasons.
var (
	ErrBadMagic            = errors.New("bad magic number")
	ErrMisalignedDirectory = errors.New("directory length is not a multiple of the descriptor size")
	ErrTooManyEntries      = errors.New("too many entries")
	ErrNegativeField       = errors.New("negative field")
	ErrPayloadOutOfRange   = errors.New("payload out of range")
)

type (
	IoError struct {
		Op     string
		Offset int64
		Err    error
	}
	FormatError struct {
		Reason error
		// Field names the offending record field, e.g. "directory_offset".
		Field string
		Value int64
		Limit int64
	}
	IndexError struct {
		Index int
		Count int
	}
)

func NewIoError(op string, offset int64, err error) *IoError {
	return &IoError{Op: op, Offset: offset, Err: err}
}

func (r *IoError) Error() string {
	if r.Err == nil {
		return fmt.Sprintf("%v: %s at offset %d", ErrIO, r.Op, r.Offset)
	}
	return fmt.Sprintf("%v: %s at offset %d: %v", ErrIO, r.Op, r.Offset, r.Err)
}

func (r *IoError) Unwrap() error {
	return r.Err
}

func (r *IoError) Is(target error) bool {
	return target == ErrIO
}

func NewFormatError(reason error, field string, value int64, limit int64) *FormatError {
	return &FormatError{Reason: reason, Field: field, Value: value, Limit: limit}
}

func (r *FormatError) Error() string {
	switch r.Reason {
	case ErrBadMagic:
		return fmt.Sprintf("%v: %v", ErrFormat, r.Reason)
	case ErrNegativeField:
		return fmt.Sprintf(`%v: %v "%s" = %d`, ErrFormat, r.Reason, r.Field, r.Value)
	default:
		return fmt.Sprintf(`%v: %v: "%s" = %d, limit %d`, ErrFormat, r.Reason, r.Field, r.Value, r.Limit)
	}
}

func (r *FormatError) Is(target error) bool {
	return target == ErrFormat || target == r.Reason
}

func NewIndexError(index int, count int) *IndexError {
	return &IndexError{Index: index, Count: count}
}

func (r *IndexError) Error() string {
	return fmt.Sprintf("%v: index %d, entry count %d", ErrIndex, r.Index, r.Count)
}

func (r *IndexError) Is(target error) bool {
	return target == ErrIndex
}

// IsFormat reports whether err was caused by a malformed archive.
func IsFormat(err error) bool {
	return errors.Is(err, ErrFormat)
}

// Reason extracts the format reason sentinel from err, or nil.
func Reason(err error) error {
	var formatErr *FormatError
	if errors.As(err, &formatErr) {
		return formatErr.Reason
	}
	return nil
}
