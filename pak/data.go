// Package pak reads "pak" archives: a 12-byte header pointing at a directory
// of 64-byte descriptors, each naming one payload stored elsewhere in the file.
//
//	Offset 0:        "PACK" | directory offset (int32 LE) | directory length (int32 LE)
//	...              payloads, addressed by descriptor offsets
//	directoryOffset: descriptors, 56-byte NUL-padded name | offset (int32 LE) | size (int32 LE)
//
// A Loader validates the whole directory when it is opened and reads payloads
// by index afterwards. It is not safe for concurrent use.
package pak

import (
	"log/slog"

	"github.com/thanhnguyen2187/pak-savior/pak/lbytes"
	"github.com/thanhnguyen2187/pak-savior/pak/pdesc"
	"golang.org/x/text/encoding/charmap"
)

type State int

const (
	StateClosed State = iota
	StateValid
	StateInvalid
)

const (
	MaxFilesInPack = pdesc.MaxFilesInPack
	NameLength     = pdesc.NameLength
)

type (
	Loader struct {
		reader    *lbytes.Reader
		directory pdesc.Directory
		state     State
		path      string

		logger      *slog.Logger
		nameCharmap *charmap.Charmap
	}
	// Entry is a read-only view of one directory record.
	Entry struct {
		Index  int    `json:"index"`
		Name   string `json:"name"`
		Offset int64  `json:"offset"`
		Size   int64  `json:"size"`
	}
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateValid:
		return "valid"
	case StateInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}
