package pdesc

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/pak-savior/pak/lbytes"
	"github.com/thanhnguyen2187/pak-savior/pak/perr"
	"github.com/thanhnguyen2187/pak-savior/pak/pheader"
)

func DecodeEntry(reader *lbytes.Reader) (*Descriptor, error) {
	// manual decoding, the name is a raw byte buffer with no guaranteed encoding
	descriptor := Descriptor{}
	err := error(nil)

	descriptor.RawName, err = reader.ReadBytes(NameLength)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeEntry error: read descriptor.RawName")
	}
	descriptor.Offset, err = reader.ReadInt()
	if err != nil {
		return nil, errors.Wrap(err, "DecodeEntry error: read descriptor.Offset")
	}
	descriptor.Size, err = reader.ReadInt()
	if err != nil {
		return nil, errors.Wrap(err, "DecodeEntry error: read descriptor.Size")
	}

	return &descriptor, nil
}

// CalculateNumEntries derives the entry count from the directory length.
func CalculateNumEntries(directoryLength int32) (int, error) {
	if directoryLength < 0 {
		return 0, perr.NewFormatError(perr.ErrNegativeField, "directory_length", int64(directoryLength), 0)
	}
	if directoryLength%DefaultDescriptorSize != 0 {
		err := perr.NewFormatError(
			perr.ErrMisalignedDirectory, "directory_length",
			int64(directoryLength), DefaultDescriptorSize,
		)
		return 0, err
	}
	numEntries := int(directoryLength / DefaultDescriptorSize)
	if numEntries > MaxFilesInPack {
		err := perr.NewFormatError(perr.ErrTooManyEntries, "entry_count", int64(numEntries), MaxFilesInPack)
		return 0, err
	}
	return numEntries, nil
}

// Validate checks the descriptor's fields against the archive length.
func (d Descriptor) Validate(archiveLength int64) error {
	if d.Offset < 0 {
		return perr.NewFormatError(perr.ErrNegativeField, "offset", int64(d.Offset), 0)
	}
	if d.Size < 0 {
		return perr.NewFormatError(perr.ErrNegativeField, "size", int64(d.Size), 0)
	}
	if d.End() > archiveLength {
		return perr.NewFormatError(perr.ErrPayloadOutOfRange, "offset+size", d.End(), archiveLength)
	}
	return nil
}

// DecodeBlock decodes the whole directory the header points at. Nothing is
// returned unless every descriptor is readable and in range.
func DecodeBlock(reader *lbytes.Reader, header pheader.Header) (Directory, error) {
	numEntries, err := CalculateNumEntries(header.DirectoryLength)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeBlock error")
	}

	directoryOffset := int64(header.DirectoryOffset)
	directoryEnd := directoryOffset + int64(header.DirectoryLength)
	if directoryEnd > reader.Size() {
		err := perr.NewIoError(
			"seek directory", directoryOffset,
			errors.Errorf("directory ends at %d, beyond source length %d", directoryEnd, reader.Size()),
		)
		return nil, errors.Wrap(err, "DecodeBlock error")
	}
	if err := reader.SeekTo(directoryOffset); err != nil {
		return nil, errors.Wrap(err, "DecodeBlock error")
	}

	directory := make(Directory, 0, numEntries)
	for i := 0; i < numEntries; i++ {
		descriptor, err := DecodeEntry(reader)
		if err != nil {
			return nil, errors.Wrapf(err, "DecodeBlock error: entry %d", i)
		}
		if descriptor == nil {
			return nil, errors.New("pdesc.DecodeBlock unreachable code")
		}
		if err := descriptor.Validate(reader.Size()); err != nil {
			return nil, errors.Wrapf(err, `DecodeBlock error: entry %d "%s"`, i, descriptor.Name())
		}
		directory = append(directory, *descriptor)
	}

	return directory, nil
}
