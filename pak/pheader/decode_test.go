package pheader

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/pak-savior/pak/lbytes"
	"github.com/thanhnguyen2187/pak-savior/pak/paktest"
	"github.com/thanhnguyen2187/pak-savior/pak/perr"
)

func TestDecode(t *testing.T) {
	reader := lbytes.NewBytesReader(paktest.EncodeHeader("PACK", 100, 64))
	// cursor is reset before reading
	require.NoError(t, reader.SeekTo(8))

	header, err := Decode(reader)
	require.NoError(t, err)
	assert.Equal(t, MagicNumberBytes, header.MagicNumber)
	assert.Equal(t, int32(100), header.DirectoryOffset)
	assert.Equal(t, int32(64), header.DirectoryLength)
	assert.Equal(t, int64(DefaultHeaderSize), reader.Position())
}

func TestDecode_Errors(t *testing.T) {
	tests := map[string]struct {
		in     []byte
		target error
	}{
		"bad magic": {
			in:     paktest.EncodeHeader("PAKK", 12, 0),
			target: perr.ErrBadMagic,
		},
		"lower case magic": {
			in:     paktest.EncodeHeader("pack", 12, 0),
			target: perr.ErrBadMagic,
		},
		"negative offset": {
			in:     paktest.EncodeHeader("PACK", -1, 0),
			target: perr.ErrNegativeField,
		},
		"negative length": {
			in:     paktest.EncodeHeader("PACK", 12, -64),
			target: perr.ErrNegativeField,
		},
		"truncated": {
			in:     paktest.EncodeHeader("PACK", 12, 0)[:10],
			target: perr.ErrIO,
		},
		"empty": {
			in:     []byte{},
			target: perr.ErrIO,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(lbytes.NewBytesReader(test.in))
			require.Error(t, err)
			assert.True(t, errors.Is(err, test.target), err.Error())
		})
	}
}

func TestIsValidMagicNumber(t *testing.T) {
	assert.True(t, IsValidMagicNumber([]byte("PACK")))
	assert.False(t, IsValidMagicNumber([]byte("PAC")))
	assert.False(t, IsValidMagicNumber(nil))
}
