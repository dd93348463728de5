package message

import (
	tea "charm.land/bubbletea/v2"

	nt "vellum/entity"
)

// ErrorMsg contains an error
type ErrorMsg struct {
	Err error
}

// ErrorCmd wraps an error for the update loop
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// ApplyMsg carries a committed chip sequence to be applied as the view
type ApplyMsg struct {
	Field string
	Chips []nt.FilterChip
}

// GetPageMsg signals to load a page of documents
type GetPageMsg struct {
	Offset int
	Size   int
}

// GetPageCmd returns a command to request a page of documents
func GetPageCmd(offset, size int) tea.Cmd {
	return func() tea.Msg {
		return GetPageMsg{
			Offset: offset,
			Size:   size,
		}
	}
}
