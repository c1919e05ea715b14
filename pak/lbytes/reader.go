package lbytes

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/pak-savior/pak/perr"
)

// Position returns the current read cursor.
func (b *Reader) Position() int64 {
	position, _ := b.Seek(0, io.SeekCurrent)
	return position
}

// SeekTo moves the cursor to an absolute offset. Offsets past the end of the
// source are rejected instead of being allowed to produce a later short read.
func (b *Reader) SeekTo(offset int64) error {
	if offset < 0 || offset > b.Size() {
		err := errors.Errorf("seek target beyond source length %d", b.Size())
		return perr.NewIoError("seek", offset, err)
	}
	if _, err := b.Seek(offset, io.SeekStart); err != nil {
		return perr.NewIoError("seek", offset, err)
	}
	return nil
}

func (b *Reader) ReadInt() (int32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	result := binary.LittleEndian.Uint32(bs)
	return int32(result), nil
}

// ReadBytes reads exactly n bytes; a short read is an error.
func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// add return early to avoid EOF error
	// when reader's pointer reach end of file
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	position := b.Position()
	if _, err := io.ReadFull(b, bs); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, perr.NewIoError("read", position, err)
	}
	return bs, nil
}

// ReadBytesAt seeks to offset and reads exactly n bytes from there.
func (b *Reader) ReadBytesAt(offset int64, n int) ([]byte, error) {
	if err := b.SeekTo(offset); err != nil {
		return nil, err
	}
	return b.ReadBytes(n)
}

func (b *Reader) Close() error {
	if b.source == nil {
		return nil
	}
	err := b.source.Close()
	b.source = nil
	if err != nil {
		return perr.NewIoError("close", 0, err)
	}
	return nil
}
