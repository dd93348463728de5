// Package chipfield is the multi-value filter control: a draft line plus
// committed chips, each joined to its predecessors by a cyclable operator.
package chipfield

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"vellum/chips"
	nt "vellum/entity"
	"vellum/message"
	"vellum/pattern"
	"vellum/style"
)

const maxDraftLen = 100

// Panel edits one field-scoped chip sequence. Selection moves across the
// committed chips and the draft; the draft sits conceptually to the right
// of the last chip.
type Panel struct {
	set      *chips.Set
	field    string
	selected int // chip index, or len(chips) for the draft
	errText  string

	width  int
	height int

	logger nt.Logger
}

func New(field string, lgr nt.Logger) Panel {
	return Panel{
		set:    chips.New(),
		field:  field,
		logger: lgr,
	}
}

// Set exposes the underlying chip store, for the host and for blur commit.
func (pnl Panel) Set() *chips.Set {
	return pnl.set
}

func (pnl Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		return pnl, nil

	case tea.KeyPressMsg:
		return pnl.handleKey(msg)
	}

	return pnl, nil
}

func (pnl Panel) handleKey(msg tea.KeyPressMsg) (Panel, tea.Cmd) {

	onDraft := pnl.selected >= pnl.set.Len()

	switch msg.String() {

	case "enter":
		if !onDraft {
			// enter on a chip's badge cycles its operator
			pnl.set.Retarget(pnl.selected)
			return pnl, nil
		}
		return pnl.commitDraft()

	case "backspace":
		if !onDraft {
			return pnl, nil
		}
		draft := []rune(pnl.set.Draft())
		if len(draft) > 0 {
			pnl.set.SetDraft(string(draft[:len(draft)-1]))
			return pnl, nil
		}
		// empty draft, the keystroke undoes the last entry
		pnl.set.BackspaceOnEmptyDraft()
		pnl.selected = pnl.set.Len()
		return pnl, nil

	case "d":
		if !onDraft {
			pnl.set.RemoveAt(pnl.selected)
			if pnl.selected > pnl.set.Len() {
				pnl.selected = pnl.set.Len()
			}
			return pnl, nil
		}

	case "left":
		if pnl.selected > 0 {
			pnl.selected--
		}
		return pnl, nil

	case "right":
		if pnl.selected < pnl.set.Len() {
			pnl.selected++
		}
		return pnl, nil

	case "ctrl+p":
		return pnl.apply()
	}

	// anything else printable lands in the draft
	text := msg.String()
	if text == "space" {
		text = " "
	}
	if onDraft && len([]rune(text)) == 1 && len(pnl.set.Draft()) < maxDraftLen {
		pnl.set.SetDraft(pnl.set.Draft() + text)
		pnl.errText = ""
	}

	return pnl, nil
}

// Blur commits a non-empty draft when the control loses focus, so typed
// text is never silently discarded.
func (pnl Panel) Blur() Panel {
	pnl.set.BlurCommit()
	pnl.selected = pnl.set.Len()
	return pnl
}

// commitDraft validates a pattern-bearing draft and commits it as a chip.
func (pnl Panel) commitDraft() (Panel, tea.Cmd) {

	err := pattern.Check(patternsIn([]string{pnl.set.Draft()}))
	if err != nil {
		pnl.errText = err.Error()
		return pnl, nil
	}

	pnl.errText = ""
	pnl.set.Commit(pnl.set.Draft())
	pnl.selected = pnl.set.Len()
	return pnl, nil
}

// apply re-checks every pattern-bearing chip and hands the sequence to the
// host for serialization and the store view.
func (pnl Panel) apply() (Panel, tea.Cmd) {

	values := []string{}
	for _, chip := range pnl.set.Chips() {
		values = append(values, chip.Value)
	}

	err := pattern.Check(patternsIn(values))
	if err != nil {
		pnl.errText = err.Error()
		return pnl, nil
	}

	pnl.errText = ""
	field := pnl.field
	chipSeq := pnl.set.Chips()
	return pnl, func() tea.Msg {
		return message.ApplyMsg{Field: field, Chips: chipSeq}
	}
}

// patternsIn picks out the slash-delimited values, stripped for compiling.
func patternsIn(values []string) (patterns []string) {

	for _, value := range values {
		if len(value) > 1 && strings.HasPrefix(value, "/") && strings.HasSuffix(value, "/") {
			patterns = append(patterns, strings.Trim(value, "/"))
		}
	}
	return
}

// Render draws the chip row with operator badges, the draft, and any
// validation error, boxed and centered as a dialog.
func (pnl Panel) Render() string {

	var content strings.Builder
	content.WriteString(style.MutedStyle.Render(pnl.field+":") + " ")

	for i, chip := range pnl.set.Chips() {
		if i > 0 {
			// the first chip's op is never rendered, nothing precedes it
			content.WriteString(style.BadgeStyle.Render(chip.Op.String()) + " ")
		}

		chipStyle := style.ChipStyle
		if i == pnl.selected {
			chipStyle = style.HlStyle
		}
		content.WriteString(chipStyle.Render(chip.Value) + " ")
	}

	draft := pnl.set.Draft()
	if pnl.selected == pnl.set.Len() {
		draft += lipgloss.NewStyle().Reverse(true).Render(" ")
	}
	content.WriteString(draft)

	if pnl.errText != "" {
		content.WriteString("\n\n" + style.ErrorStyle.Render(pnl.errText))
	}

	helpText := "enter: commit/cycle op  ←→: select  d: delete  bksp: undo last  ctrl+p: apply  esc: close"
	content.WriteString("\n\n" + style.MutedStyle.Render(helpText))

	dialogStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Width(70)

	return dialogStyle.Render(content.String())
}
