package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/pak-savior/pak"
)

func Start(loader *pak.Loader) error {
	entryBrowser := CreateEntryBrowser(loader)
	if err := tea.NewProgram(entryBrowser).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
