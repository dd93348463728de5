package vellum

import (
	tea "charm.land/bubbletea/v2"

	"vellum/message"
	"vellum/resultpanel"
)

// getPage gets a page of documents from the store
func (m Model) getPage(offset, size int) tea.Cmd {

	return func() tea.Msg {

		_, count, err := m.Store.GetView()
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		docs, err := m.Store.GetPage(offset, size)
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		return resultpanel.PageMsg{
			Docs:  docs,
			Count: count,
		}
	}
}
