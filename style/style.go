package style

import (
	"charm.land/lipgloss/v2"

	nt "vellum/entity"
)

var (
	BorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Subtle warm grey border
	HlStyle     = lipgloss.NewStyle().Background(lipgloss.Color("237")) // Slightly warmer highlight
	MutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("246")) // Warm muted grey text
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("167")) // Soft red for validation errors
	BadgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("240")) // Operator badge
	ChipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("254")).Background(lipgloss.Color("238")) // Committed chip
	UnStyle     = lipgloss.NewStyle()
)

// RowStyler returns a StyleFunc that highlights the selected row
func RowStyler(selectedRow int) func(row, col int) lipgloss.Style {
	return func(row, col int) lipgloss.Style {
		if row == selectedRow {
			return HlStyle
		}
		return UnStyle
	}
}

// tokenStyles maps scanner token types to display styles. The mapping is
// purely cosmetic; the scanner owns the boundaries, this owns the colors.
var tokenStyles = map[nt.TokenType]lipgloss.Style{
	nt.FieldToken:    lipgloss.NewStyle().Foreground(lipgloss.Color("75")),  // Blue for field prefixes
	nt.OperatorToken: lipgloss.NewStyle().Foreground(lipgloss.Color("215")), // Orange for | & ! /N
	nt.StringToken:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")), // Green for quoted runs
	nt.RegexToken:    lipgloss.NewStyle().Foreground(lipgloss.Color("174")), // Rose for patterns
	nt.MacroToken:    lipgloss.NewStyle().Foreground(lipgloss.Color("140")), // Purple for @macros
	nt.KeywordToken:  lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
	nt.ParenToken:    MutedStyle,
}

// TokenStyle returns the style for a token type, unstyled for plain,
// whitespace, and anything unmapped.
func TokenStyle(tokenType nt.TokenType) lipgloss.Style {
	st, ok := tokenStyles[tokenType]
	if !ok {
		return UnStyle
	}
	return st
}

// Tokens renders a scanned token stream as one styled line.
func Tokens(tokens []nt.Token) string {
	out := ""
	for _, tok := range tokens {
		out += TokenStyle(tok.Type).Render(tok.Text)
	}
	return out
}
