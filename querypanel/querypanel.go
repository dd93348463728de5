// Package querypanel is the editable raw-query line with live syntax
// highlighting.
package querypanel

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	nt "vellum/entity"
	"vellum/scan"
	"vellum/style"
)

const maxQueryLen = 500

// Panel holds the raw query text and re-tokenizes on every edit. Documents
// are short, so a full re-scan per keystroke beats incremental lexing on
// simplicity and is nowhere near noticeable.
type Panel struct {
	scanner *scan.Scanner
	text    string
	cursor  int
	tokens  []nt.Token

	width   int
	focused bool

	ctx    context.Context
	logger nt.Logger
}

// SetQueryMsg replaces the query line, used when a chip apply serializes
// into compose text.
type SetQueryMsg struct {
	Text string
}

// SubmitMsg carries the query text on enter; serialization to the backend
// request happens upstream.
type SubmitMsg struct {
	Text string
}

func New(ctx context.Context, scanner *scan.Scanner, lgr nt.Logger) Panel {
	return Panel{
		scanner: scanner,
		tokens:  scanner.Scan(""),
		focused: true,
		ctx:     ctx,
		logger:  lgr,
	}
}

func (pnl Panel) Text() string {
	return pnl.text
}

func (pnl Panel) Focused() bool {
	return pnl.focused
}

func (pnl Panel) Focus(focused bool) Panel {
	pnl.focused = focused
	return pnl
}

func (pnl Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {

	case SetQueryMsg:
		pnl.text = msg.Text
		pnl.cursor = len([]rune(pnl.text))
		pnl.tokens = pnl.scanner.Scan(pnl.text)
		return pnl, nil

	case tea.WindowSizeMsg:
		pnl.width = msg.Width
		return pnl, nil

	case tea.KeyPressMsg:
		if !pnl.focused {
			return pnl, nil
		}
		return pnl.handleKey(msg)
	}

	return pnl, nil
}

func (pnl Panel) handleKey(msg tea.KeyPressMsg) (Panel, tea.Cmd) {

	in := []rune(pnl.text)
	oldText := pnl.text

	switch msg.String() {

	case "enter":
		if pnl.text == "" {
			return pnl, nil
		}
		text := pnl.text
		return pnl, func() tea.Msg {
			return SubmitMsg{Text: text}
		}

	case "backspace":
		if pnl.cursor > 0 {
			pnl.text = string(in[:pnl.cursor-1]) + string(in[pnl.cursor:])
			pnl.cursor--
		}

	case "delete":
		if pnl.cursor < len(in) {
			pnl.text = string(in[:pnl.cursor]) + string(in[pnl.cursor+1:])
		}

	case "left":
		if pnl.cursor > 0 {
			pnl.cursor--
		}

	case "right":
		if pnl.cursor < len(in) {
			pnl.cursor++
		}

	case "home", "ctrl+a":
		pnl.cursor = 0

	case "end", "ctrl+e":
		pnl.cursor = len(in)

	case "ctrl+u":
		pnl.text = ""
		pnl.cursor = 0

	case "space":
		if len(in) < maxQueryLen {
			pnl.text = string(in[:pnl.cursor]) + " " + string(in[pnl.cursor:])
			pnl.cursor++
		}

	default:
		if len([]rune(msg.String())) == 1 && len(in) < maxQueryLen {
			pnl.text = string(in[:pnl.cursor]) + msg.String() + string(in[pnl.cursor:])
			pnl.cursor++
		}
	}

	if pnl.text != oldText {
		pnl.tokens = pnl.scanner.Scan(pnl.text)
	}

	return pnl, nil
}

// Render draws the prompt and the styled token stream, with a block cursor
// when focused. Styling happens rune by rune so the cursor can sit inside
// a token without splitting its text.
func (pnl Panel) Render() string {

	prompt := style.MutedStyle.Render("query> ")

	line := ""
	for _, tok := range pnl.tokens {
		st := style.TokenStyle(tok.Type)
		for i, r := range []rune(tok.Text) {
			if pnl.focused && tok.Start+i == pnl.cursor {
				line += st.Reverse(true).Render(string(r))
				continue
			}
			line += st.Render(string(r))
		}
	}

	if pnl.focused && pnl.cursor == len([]rune(pnl.text)) {
		line += lipgloss.NewStyle().Reverse(true).Render(" ")
	}

	return prompt + line
}
