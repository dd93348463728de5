package vellum

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"vellum/chipfield"
	nt "vellum/entity"
	"vellum/message"
	"vellum/querypanel"
	"vellum/resultpanel"
	"vellum/scan"
)

const (
	queryHeight  = 2
	footerHeight = 2
)

// Model is the bubbletea model for the search console.
type Model struct {
	Store  Store
	Layout *Layout
	logger nt.Logger
	ctx    context.Context

	CurrentScreen Screen
	errorString   string
	noteString    string

	QueryPanel  querypanel.Panel
	ChipPanel   chipfield.Panel
	ResultPanel resultpanel.Panel

	Width  int
	Height int
}

// NewModel creates the console model over a loaded store.
func NewModel(ctx context.Context, store Store, layout *Layout, lgr nt.Logger) (model Model, err error) {

	// start with an unfiltered view
	err = store.SetView(layout.ChipField, nil)
	if err != nil {
		return
	}

	fields, count, err := store.GetView()
	if err != nil {
		return
	}

	scanner := scan.New(layout.Fields)

	model = Model{
		Store:         store,
		Layout:        layout,
		logger:        lgr,
		ctx:           ctx,
		CurrentScreen: SearchScreen,
		QueryPanel:    querypanel.New(ctx, scanner, lgr),
		ChipPanel:     chipfield.New(layout.ChipField, lgr),
		ResultPanel:   resultpanel.New(ctx, layout.Columns, fields, count, lgr),
	}

	return
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case message.ApplyMsg:
		return m.applyChips(msg.Field, msg.Chips)

	case querypanel.SubmitMsg:
		// query execution is the backend's job; surface what would be sent
		m.logger.Info(m.ctx, "query submitted", "query", msg.Text)
		m.noteString = "submitted: " + msg.Text
		return m, nil

	case message.GetPageMsg:
		return m, m.getPage(msg.Offset, msg.Size)

	case resultpanel.PageMsg, resultpanel.ResetMsg:
		var cmd tea.Cmd
		m.ResultPanel, cmd = m.ResultPanel.Update(msg)
		return m, cmd

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.resize(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {

	if m.errorString != "" {
		m.errorString = ""
	}

	switch msg.String() {

	case "ctrl+c":
		return m, tea.Quit

	case "ctrl+f":
		if m.CurrentScreen == SearchScreen {
			m.CurrentScreen = FilterScreen
			return m, nil
		}

	case "esc":
		switch {
		case m.CurrentScreen == FilterScreen:
			// leaving the control commits any draft
			m.ChipPanel = m.ChipPanel.Blur()
			m.CurrentScreen = SearchScreen
		case m.QueryPanel.Focused():
			m.QueryPanel = m.QueryPanel.Focus(false)
		default:
			return m, tea.Quit
		}
		return m, nil

	case "tab":
		if m.CurrentScreen == SearchScreen {
			m.QueryPanel = m.QueryPanel.Focus(!m.QueryPanel.Focused())
			return m, nil
		}
	}

	if m.CurrentScreen == FilterScreen {
		var cmd tea.Cmd
		m.ChipPanel, cmd = m.ChipPanel.Update(msg)
		return m, cmd
	}

	if m.QueryPanel.Focused() {
		var cmd tea.Cmd
		m.QueryPanel, cmd = m.QueryPanel.Update(msg)
		return m, cmd
	}

	if msg.String() == "q" {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.ResultPanel, cmd = m.ResultPanel.Update(msg)
	return m, cmd
}

// applyChips sets the store view from a chip sequence, shows its
// serialized form on the query line, and resets the results.
func (m Model) applyChips(field string, chipSeq []nt.FilterChip) (tea.Model, tea.Cmd) {

	err := m.Store.SetView(field, chipSeq)
	if err != nil {
		return m, message.ErrorCmd(err)
	}

	m.QueryPanel, _ = m.QueryPanel.Update(querypanel.SetQueryMsg{Text: Serialize(field, chipSeq)})
	m.CurrentScreen = SearchScreen

	var cmd tea.Cmd
	m.ResultPanel, cmd = m.ResultPanel.Update(resultpanel.ResetMsg{})
	return m, cmd
}

func (m Model) resize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {

	m.Width = msg.Width
	m.Height = msg.Height

	adjusted := tea.WindowSizeMsg{
		Width:  msg.Width,
		Height: msg.Height - queryHeight - footerHeight,
	}

	var cmd1, cmd2, cmd3 tea.Cmd
	m.ResultPanel, cmd1 = m.ResultPanel.Update(adjusted)
	m.QueryPanel, cmd2 = m.QueryPanel.Update(msg)
	m.ChipPanel, cmd3 = m.ChipPanel.Update(msg)

	return m, tea.Sequence(cmd1, cmd2, cmd3)
}

func (m Model) View() tea.View {
	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	queryLayer := lipgloss.NewLayer("query", m.QueryPanel.Render())
	resultLayer := lipgloss.NewLayer("results", m.ResultPanel.Render()).Y(queryHeight)

	status := m.noteString
	if m.errorString != "" {
		status = m.errorString
	}
	footerContent := RenderFooter(m.ResultPanel.Selected()+1, m.ResultPanel.Total(), m.Store.Name(), status, m.Width)
	footerLayer := lipgloss.NewLayer("footer", footerContent).Y(m.Height - footerHeight)

	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(queryLayer)
	canvas.Compose(resultLayer)
	canvas.Compose(footerLayer)

	if m.CurrentScreen == FilterScreen {
		dialog := m.ChipPanel.Render()

		dialogHeight := strings.Count(dialog, "\n") + 1
		dialogWidth := 74 // dialog style width plus border

		vPad := (m.Height - dialogHeight) / 2
		hPad := (m.Width - dialogWidth) / 2
		if vPad < 0 {
			vPad = 0
		}
		if hPad < 0 {
			hPad = 0
		}

		dialogLayer := lipgloss.NewLayer("chipfield", dialog).X(hPad).Y(vPad)
		canvas.Compose(dialogLayer)
	}

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}
