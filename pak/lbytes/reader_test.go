package lbytes

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/pak-savior/pak/perr"
)

func TestBytesReader_ReadInt(t *testing.T) {
	reader := NewBytesReader(
		[]byte{
			3, 1, 4, 3,
			12, 34, 56, 78,
		},
	)

	resultInt1, err := reader.ReadInt()
	assert.NoError(t, err)
	assert.Equal(t, int32(50594051), resultInt1)

	resultInt2, err := reader.ReadInt()
	assert.NoError(t, err)
	assert.Equal(t, int32(1312301580), resultInt2)

	_, err = reader.ReadInt()
	assert.True(t, errors.Is(err, perr.ErrIO))
}

func TestBytesReader_ReadIntNegative(t *testing.T) {
	reader := NewBytesReader([]byte{0xFF, 0xFF, 0xFF, 0xFF})

	result, err := reader.ReadInt()
	assert.NoError(t, err)
	assert.Equal(t, int32(-1), result)
}

func TestBytesReader_ReadBytesShort(t *testing.T) {
	reader := NewBytesReader([]byte{1, 2, 3})

	bs, err := reader.ReadBytes(0)
	assert.NoError(t, err)
	assert.Empty(t, bs)

	_, err = reader.ReadBytes(4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, perr.ErrIO))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestBytesReader_SeekTo(t *testing.T) {
	reader := NewBytesReader([]byte("0123456789"))

	assert.NoError(t, reader.SeekTo(10))
	assert.Equal(t, int64(10), reader.Position())

	err := reader.SeekTo(11)
	assert.True(t, errors.Is(err, perr.ErrIO))
	err = reader.SeekTo(-1)
	assert.True(t, errors.Is(err, perr.ErrIO))

	bs, err := reader.ReadBytesAt(3, 4)
	assert.NoError(t, err)
	assert.Equal(t, []byte("3456"), bs)

	// cursor position from a previous read has no effect
	bs, err = reader.ReadBytesAt(0, 2)
	assert.NoError(t, err)
	assert.Equal(t, []byte("01"), bs)
}

func TestExecuteInstructions(t *testing.T) {
	type record struct {
		Tag   []byte `json:"tag"`
		Value int32  `json:"value"`
	}
	reader := NewBytesReader([]byte{'a', 'b', 0xFE, 0xFF, 0xFF, 0xFF})
	instructions := []Instruction{
		{"tag", CreateNBytesReadFunction(reader, 2)},
		{"value", CreateIntReadFunction(reader)},
	}

	result, err := ExecuteInstructions[record](instructions)
	require.NoError(t, err)
	assert.Equal(t, []byte("ab"), result.Tag)
	assert.Equal(t, int32(-2), result.Value)

	_, err = ExecuteInstructions[record](instructions)
	assert.True(t, errors.Is(err, perr.ErrIO))
}

func TestOpeners(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, []byte("PACKdata"), 0644))

	openers := map[string]func(string) (*Reader, error){
		"file": OpenFile,
		"mmap": OpenMmap,
	}
	for name, open := range openers {
		t.Run(name, func(t *testing.T) {
			reader, err := open(path)
			require.NoError(t, err)
			assert.Equal(t, int64(8), reader.Size())

			bs, err := reader.ReadBytesAt(4, 4)
			assert.NoError(t, err)
			assert.Equal(t, []byte("data"), bs)

			assert.NoError(t, reader.Close())
			assert.NoError(t, reader.Close())
		})
	}
}

func TestOpenFile_Missing(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "missing.pak"))
	assert.True(t, errors.Is(err, perr.ErrIO))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = OpenFile(t.TempDir())
	assert.True(t, errors.Is(err, perr.ErrIO))
}
