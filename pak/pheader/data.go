package pheader

type (
	Header struct {
		MagicNumber     []byte `json:"magic_number"`
		DirectoryOffset int32  `json:"directory_offset"`
		DirectoryLength int32  `json:"directory_length"`
	}
)

const (
	DefaultHeaderSize = 12
)

var (
	MagicNumberBytes = []byte("PACK")
)
