package lbytes

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/pak-savior/pak/perr"
	"golang.org/x/exp/mmap"
)

type (
	fileSource struct {
		*os.File
		size int64
	}
	mmapSource struct {
		*mmap.ReaderAt
	}
	bytesSource struct {
		*bytes.Reader
	}
)

func (s fileSource) Size() int64 {
	return s.size
}

func (s mmapSource) Size() int64 {
	return int64(s.Len())
}

func (bytesSource) Close() error {
	return nil
}

func NewReader(source Source) *Reader {
	return &Reader{
		SectionReader: *io.NewSectionReader(source, 0, source.Size()),
		source:        source,
	}
}

func NewBytesReader(bs []byte) *Reader {
	return NewReader(bytesSource{Reader: bytes.NewReader(bs)})
}

// OpenFile opens path as a plain file source.
func OpenFile(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, perr.NewIoError("open", 0, err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, perr.NewIoError("stat", 0, err)
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, perr.NewIoError("open", 0, errors.Errorf(`"%s" is a directory`, path))
	}
	return NewReader(fileSource{File: file, size: info.Size()}), nil
}

// OpenMmap maps path into memory and reads from the mapping.
func OpenMmap(path string) (*Reader, error) {
	readerAt, err := mmap.Open(path)
	if err != nil {
		return nil, perr.NewIoError("mmap", 0, err)
	}
	return NewReader(mmapSource{ReaderAt: readerAt}), nil
}
