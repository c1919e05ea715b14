package pdesc

import (
	"bytes"
)

type (
	Descriptor struct {
		RawName []byte `json:"name"`
		Offset  int32  `json:"offset"`
		Size    int32  `json:"size"`
	}
	// Directory is the ordered sequence of descriptors of one archive.
	Directory []Descriptor
)

const (
	NameLength            = 56
	DefaultDescriptorSize = NameLength + 8
	MaxFilesInPack        = 2048
)

// NameBytes returns the name up to the first NUL, or all NameLength bytes
// when the name is unterminated.
func (d Descriptor) NameBytes() []byte {
	if i := bytes.IndexByte(d.RawName, 0); i >= 0 {
		return d.RawName[:i]
	}
	return d.RawName
}

func (d Descriptor) Name() string {
	return string(d.NameBytes())
}

// End is the offset one past the last payload byte.
func (d Descriptor) End() int64 {
	return int64(d.Offset) + int64(d.Size)
}

func CalculateBlockLength(numEntries int) int {
	return numEntries * DefaultDescriptorSize
}
