package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/pak-savior/ds"
	"github.com/thanhnguyen2187/pak-savior/pak"
)

const (
	PageSize       = 20
	PreviewLength  = 256
	PreviewLineLen = 16
)

type EntryBrowser struct {
	loader  *pak.Loader
	entries []pak.Entry
	cursor  int
	preview string
	err     error
}

func CreateEntryBrowser(loader *pak.Loader) EntryBrowser {
	return EntryBrowser{
		loader:  loader,
		entries: loader.Entries(),
	}
}

// HexPreview renders up to PreviewLength bytes as offset, hex and ASCII columns.
func HexPreview(data []byte) string {
	if len(data) > PreviewLength {
		data = data[:PreviewLength]
	}
	lines := lo.Map(
		ds.MakeChunks(data, PreviewLineLen),
		func(chunk []byte, i int) string {
			printable := lo.Map(
				chunk,
				func(b byte, _ int) string {
					if b < 0x20 || b > 0x7E {
						return "."
					}
					return string(rune(b))
				},
			)
			return fmt.Sprintf(
				"%08x  %-47s  |%s|",
				i*PreviewLineLen, fmt.Sprintf("% x", chunk), strings.Join(printable, ""),
			)
		},
	)
	return strings.Join(lines, "\n")
}

func (s EntryBrowser) Cursor() int {
	return s.cursor
}

func (s EntryBrowser) loadPreview() EntryBrowser {
	_, data, err := s.loader.GetFileByID(s.entries[s.cursor].Index)
	if err != nil {
		s.err = err
		s.preview = ""
		return s
	}
	s.err = nil
	s.preview = HexPreview(data)
	if s.preview == "" {
		s.preview = "(empty)"
	}
	return s
}

func (s EntryBrowser) View() string {
	output := "PAK SAVIOR\n\n"
	output += fmt.Sprintf("Archive: %s (%d entries)\n\n", s.loader.Path(), len(s.entries))
	if len(s.entries) == 0 {
		return output + "The archive has no entries.\n\nq: quit\n"
	}

	first := s.cursor - s.cursor%PageSize
	last := lo.Min([]int{first + PageSize, len(s.entries)})
	for _, entry := range s.entries[first:last] {
		marker := "  "
		if entry.Index == s.cursor {
			marker = "> "
		}
		output += fmt.Sprintf("%s%4d  %10s  %s\n", marker, entry.Index, humanize.Bytes(uint64(entry.Size)), entry.Name)
	}

	if s.err != nil {
		output += "\nError: " + s.err.Error() + "\n"
	} else if s.preview != "" {
		output += "\n" + s.preview + "\n"
	}
	output += "\nup/down: move  enter: preview  esc: hide preview  q: quit\n"
	return output
}

func (s EntryBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return s, tea.Quit
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
			s.preview, s.err = "", nil
		}
	case "down", "j":
		if s.cursor < len(s.entries)-1 {
			s.cursor++
			s.preview, s.err = "", nil
		}
	case "enter":
		if len(s.entries) > 0 {
			s = s.loadPreview()
		}
	case "esc":
		s.preview, s.err = "", nil
	}
	return s, nil
}

func (s EntryBrowser) Init() tea.Cmd {
	return nil
}
