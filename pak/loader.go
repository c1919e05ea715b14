package pak

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/pak-savior/pak/lbytes"
	"github.com/thanhnguyen2187/pak-savior/pak/pdesc"
	"github.com/thanhnguyen2187/pak-savior/pak/pheader"
)

func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		state:  StateClosed,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Open opens the archive at path using a plain file source.
func Open(path string, opts ...Option) (*Loader, error) {
	l := NewLoader(opts...)
	if err := l.Open(path); err != nil {
		return nil, err
	}
	return l, nil
}

// OpenMmap opens the archive at path using a memory-mapped source.
func OpenMmap(path string, opts ...Option) (*Loader, error) {
	l := NewLoader(opts...)
	if err := l.OpenMmap(path); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Loader) Open(path string) error {
	return l.open(path, func() (*lbytes.Reader, error) {
		return lbytes.OpenFile(path)
	})
}

func (l *Loader) OpenMmap(path string) error {
	return l.open(path, func() (*lbytes.Reader, error) {
		return lbytes.OpenMmap(path)
	})
}

// OpenSource takes ownership of source; it is closed by Close or by a failed open.
func (l *Loader) OpenSource(source lbytes.Source) error {
	return l.open("", func() (*lbytes.Reader, error) {
		return lbytes.NewReader(source), nil
	})
}

func (l *Loader) open(path string, openReader func() (*lbytes.Reader, error)) error {
	// reset loader
	if err := l.Close(); err != nil {
		l.logger.Warn("error closing previous archive", "path", l.path, "error", err)
	}
	l.path = path
	l.state = StateInvalid

	reader, err := openReader()
	if err != nil {
		l.logger.Warn("unable to open archive", "path", path, "error", err)
		return errors.Wrap(err, "pak.Open error")
	}

	directory, err := decode(reader)
	if err != nil {
		if closeErr := reader.Close(); closeErr != nil {
			l.logger.Warn("error closing rejected archive", "path", path, "error", closeErr)
		}
		l.logger.Warn("archive rejected", "path", path, "error", err)
		return errors.Wrap(err, "pak.Open error")
	}

	l.reader = reader
	l.directory = directory
	l.state = StateValid
	l.logger.Debug("archive opened", "path", path, "size", reader.Size(), "num_files", len(directory))
	return nil
}

func decode(reader *lbytes.Reader) (pdesc.Directory, error) {
	header, err := pheader.Decode(reader)
	if err != nil {
		return nil, err
	}
	return pdesc.DecodeBlock(reader, *header)
}

// Close releases the source and clears the directory. Closing a closed or
// invalid loader does nothing; an invalid loader stays invalid.
func (l *Loader) Close() error {
	l.directory = nil
	if l.state != StateValid {
		return nil
	}
	l.state = StateClosed

	reader := l.reader
	l.reader = nil
	if err := reader.Close(); err != nil {
		return errors.Wrap(err, "pak.Close error")
	}
	l.logger.Debug("archive closed", "path", l.path)
	return nil
}

func (l *Loader) State() State {
	return l.state
}

func (l *Loader) IsValid() bool {
	return l.state == StateValid
}

// NumFiles is zero unless the loader is valid.
func (l *Loader) NumFiles() int {
	return len(l.directory)
}

// Size is the total byte length of the open archive, or zero.
func (l *Loader) Size() int64 {
	if l.reader == nil {
		return 0
	}
	return l.reader.Size()
}

func (l *Loader) Path() string {
	return l.path
}
