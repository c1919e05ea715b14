package pheader

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/pak-savior/pak/lbytes"
	"github.com/thanhnguyen2187/pak-savior/pak/perr"
)

func IsValidMagicNumber(bs []byte) bool {
	return bytes.Equal(bs, MagicNumberBytes)
}

func createMagicNumberReadFunction(reader *lbytes.Reader) lbytes.ReadFunction {
	return func() (any, error) {
		magicNumberBytes, err := reader.ReadBytes(len(MagicNumberBytes))
		if err != nil {
			return nil, err
		}
		if !IsValidMagicNumber(magicNumberBytes) {
			return nil, perr.NewFormatError(perr.ErrBadMagic, "magic_number", 0, 0)
		}
		return magicNumberBytes, nil
	}
}

// Decode reads the header from the start of the source, regardless of where
// the cursor currently is.
func Decode(reader *lbytes.Reader) (*Header, error) {
	if err := reader.SeekTo(0); err != nil {
		return nil, errors.Wrap(err, "pheader.Decode error")
	}

	readMagicNumber := createMagicNumberReadFunction(reader)
	readInt := lbytes.CreateIntReadFunction(reader)

	headerInstructions := []lbytes.Instruction{
		{Key: "magic_number", ReadFunction: readMagicNumber},
		{Key: "directory_offset", ReadFunction: readInt},
		{Key: "directory_length", ReadFunction: readInt},
	}

	header, err := lbytes.ExecuteInstructions[Header](headerInstructions)
	if err != nil {
		return nil, errors.Wrap(err, "pheader.Decode error")
	}

	if header.DirectoryOffset < 0 {
		err := perr.NewFormatError(perr.ErrNegativeField, "directory_offset", int64(header.DirectoryOffset), 0)
		return nil, err
	}
	if header.DirectoryLength < 0 {
		err := perr.NewFormatError(perr.ErrNegativeField, "directory_length", int64(header.DirectoryLength), 0)
		return nil, err
	}

	return header, nil
}
