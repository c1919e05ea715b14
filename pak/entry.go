package pak

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/pak-savior/pak/pdesc"
	"github.com/thanhnguyen2187/pak-savior/pak/perr"
)

func (l *Loader) checkState() error {
	switch l.state {
	case StateValid:
		return nil
	case StateInvalid:
		return ErrInvalid
	default:
		return ErrClosed
	}
}

func (l *Loader) descriptor(index int) (pdesc.Descriptor, error) {
	if err := l.checkState(); err != nil {
		return pdesc.Descriptor{}, err
	}
	if index < 0 || index >= len(l.directory) {
		return pdesc.Descriptor{}, perr.NewIndexError(index, len(l.directory))
	}
	return l.directory[index], nil
}

func (l *Loader) decodeName(descriptor pdesc.Descriptor) string {
	if l.nameCharmap == nil {
		return descriptor.Name()
	}
	name, err := l.nameCharmap.NewDecoder().Bytes(descriptor.NameBytes())
	if err != nil {
		return descriptor.Name()
	}
	return string(name)
}

func (l *Loader) toEntry(descriptor pdesc.Descriptor, index int) Entry {
	return Entry{
		Index:  index,
		Name:   l.decodeName(descriptor),
		Offset: int64(descriptor.Offset),
		Size:   int64(descriptor.Size),
	}
}

// GetFileByID reads the whole payload of the entry at index. Every call seeks
// and reads from the source again.
func (l *Loader) GetFileByID(index int) (string, []byte, error) {
	descriptor, err := l.descriptor(index)
	if err != nil {
		return "", nil, errors.Wrap(err, "GetFileByID error")
	}
	if err := descriptor.Validate(l.reader.Size()); err != nil {
		return "", nil, errors.Wrapf(err, "GetFileByID error: entry %d", index)
	}

	data, err := l.reader.ReadBytesAt(int64(descriptor.Offset), int(descriptor.Size))
	if err != nil {
		return "", nil, errors.Wrapf(err, "GetFileByID error: entry %d", index)
	}
	return l.decodeName(descriptor), data, nil
}

func (l *Loader) Entry(index int) (Entry, error) {
	descriptor, err := l.descriptor(index)
	if err != nil {
		return Entry{}, errors.Wrap(err, "Entry error")
	}
	return l.toEntry(descriptor, index), nil
}

// Entries lists the directory in archive order.
func (l *Loader) Entries() []Entry {
	return lo.Map(l.directory, l.toEntry)
}

// FindByName returns the indices of every entry called name. Names are not
// required to be unique.
func (l *Loader) FindByName(name string) []int {
	matched := lo.Filter(
		l.Entries(),
		func(entry Entry, _ int) bool {
			return entry.Name == name
		},
	)
	return lo.Map(
		matched,
		func(entry Entry, _ int) int {
			return entry.Index
		},
	)
}
