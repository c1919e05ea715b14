package lbytes

import (
	"io"
)

type (
	// Source is a random-access byte source of known length.
	Source interface {
		io.ReaderAt
		io.Closer
		Size() int64
	}
	Reader struct {
		io.SectionReader
		source Source
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
)
