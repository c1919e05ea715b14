package pak

import (
	"log/slog"

	"golang.org/x/text/encoding/charmap"
)

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for open/close events. Nothing is logged by default.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithNameCharmap decodes entry names from a legacy 8-bit code page into UTF-8.
// By default names are returned as their raw bytes.
func WithNameCharmap(cm *charmap.Charmap) Option {
	return func(l *Loader) {
		l.nameCharmap = cm
	}
}
