package pak

import (
	"github.com/thanhnguyen2187/pak-savior/pak/perr"
)

// Errors re-exported from perr.
var (
	ErrIO      = perr.ErrIO
	ErrFormat  = perr.ErrFormat
	ErrIndex   = perr.ErrIndex
	ErrClosed  = perr.ErrClosed
	ErrInvalid = perr.ErrInvalid

	ErrBadMagic            = perr.ErrBadMagic
	ErrMisalignedDirectory = perr.ErrMisalignedDirectory
	ErrTooManyEntries      = perr.ErrTooManyEntries
	ErrNegativeField       = perr.ErrNegativeField
	ErrPayloadOutOfRange   = perr.ErrPayloadOutOfRange
)

type (
	IoError     = perr.IoError
	FormatError = perr.FormatError
	IndexError  = perr.IndexError
)
