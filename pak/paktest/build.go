// Package paktest builds byte-exact pak archives for tests, including
// deliberately malformed ones.
package paktest

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

const (
	HeaderSize     = 12
	NameLength     = 56
	DescriptorSize = 64
)

type File struct {
	Name string
	Data []byte
}

func EncodeValueInt(value int32) []byte {
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, uint32(value))
	return bs
}

func EncodeHeader(magic string, directoryOffset int32, directoryLength int32) []byte {
	bs := make([]byte, 0, HeaderSize)
	bs = append(bs, []byte(magic)...)
	bs = append(bs, EncodeValueInt(directoryOffset)...)
	bs = append(bs, EncodeValueInt(directoryLength)...)
	return bs
}

// EncodeDescriptor NUL-pads name to NameLength; longer names are cut, which
// leaves them unterminated.
func EncodeDescriptor(name string, offset int32, size int32) []byte {
	bs := make([]byte, NameLength, DescriptorSize)
	copy(bs, name)
	bs = append(bs, EncodeValueInt(offset)...)
	bs = append(bs, EncodeValueInt(size)...)
	return bs
}

// Build lays out the header, then every payload in order, then the directory.
func Build(files ...File) []byte {
	payloadLength := 0
	for _, file := range files {
		payloadLength += len(file.Data)
	}
	directoryOffset := HeaderSize + payloadLength
	directoryLength := len(files) * DescriptorSize

	bs := make([]byte, 0, directoryOffset+directoryLength)
	bs = append(bs, EncodeHeader("PACK", int32(directoryOffset), int32(directoryLength))...)
	for _, file := range files {
		bs = append(bs, file.Data...)
	}
	offset := HeaderSize
	for _, file := range files {
		bs = append(bs, EncodeDescriptor(file.Name, int32(offset), int32(len(file.Data)))...)
		offset += len(file.Data)
	}
	return bs
}

// WriteFile stores bs in a fresh temporary directory and returns its path.
func WriteFile(t testing.TB, bs []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.pak")
	if err := os.WriteFile(path, bs, 0644); err != nil {
		t.Fatalf("paktest.WriteFile error: %v", err)
	}
	return path
}
