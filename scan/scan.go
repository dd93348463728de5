// Package scan tokenizes query-language text for highlighting.
//
// The scanner is deliberately dumb: it mirrors the backend grammar's token
// boundaries without validating anything, so the colors on screen never
// contradict how the backend will parse the line. Every input, however
// mangled, tokenizes completely; malformed runs degrade to plain.
package scan

import (
	"strings"
	"unicode"

	nt "vellum/entity"
)

// Scanner tokenizes query text against an injected field vocabulary.
// The vocabulary must be kept in sync with the backend's own field list;
// drift is cosmetic only, the backend stays authoritative.
type Scanner struct {
	fields map[string]bool
}

// New creates a Scanner recognizing the given field names, case-insensitively.
func New(fields []string) *Scanner {
	lookup := make(map[string]bool, len(fields))
	for _, name := range fields {
		lookup[strings.ToLower(name)] = true
	}
	return &Scanner{fields: lookup}
}

// keywords reserved by the query grammar, matched on uppercase form.
var keywords = map[string]bool{
	"AND":  true,
	"OR":   true,
	"NOT":  true,
	"NEAR": true,
}

// rule consumes tokens of one type at the cursor, returning the number of
// runes consumed, or zero when the rule does not apply at this position.
type rule struct {
	tokenType nt.TokenType
	consume   func(s *Scanner, in []rune, pos int) int
}

// rules are tried in order at each cursor position and the first match wins.
// Order matters: the field gate runs before words so unrecognized prefixes
// fall through, and proximity is picked off before the regex rule so /5 is
// an operator while /abc/ is a pattern.
var rules = []rule{
	{nt.WhitespaceToken, (*Scanner).whitespace},
	{nt.FieldToken, (*Scanner).field},
	{nt.MacroToken, (*Scanner).macro},
	{nt.StringToken, quoted('"')},
	{nt.StringToken, quoted('\'')},
	{nt.OperatorToken, (*Scanner).proximity},
	{nt.RegexToken, (*Scanner).regex},
	{nt.OperatorToken, (*Scanner).boolOp},
	{nt.ParenToken, (*Scanner).paren},
}

// Scan converts text into an ordered, gapless token sequence.
// It is total and pure: any input yields tokens whose texts concatenate
// back to the input exactly.
func (s *Scanner) Scan(text string) []nt.Token {
	in := []rune(text)
	tokens := []nt.Token{}

	pos := 0
	for pos < len(in) {
		tokenType, n := s.match(in, pos)
		tokens = append(tokens, nt.Token{
			Type:  tokenType,
			Text:  string(in[pos : pos+n]),
			Start: pos,
			End:   pos + n,
		})
		pos += n
	}

	return tokens
}

// match finds the highest-priority token at pos, always consuming at least
// one rune.
func (s *Scanner) match(in []rune, pos int) (nt.TokenType, int) {
	for _, rl := range rules {
		if n := rl.consume(s, in, pos); n > 0 {
			return rl.tokenType, n
		}
	}

	// word run is keyword or plain depending on the reserved set
	if n := word(in, pos); n > 0 {
		if keywords[strings.ToUpper(string(in[pos:pos+n]))] {
			return nt.KeywordToken, n
		}
		return nt.PlainToken, n
	}

	// fallback, exactly one rune
	return nt.PlainToken, 1
}

func (s *Scanner) whitespace(in []rune, pos int) int {
	n := 0
	for pos+n < len(in) && unicode.IsSpace(in[pos+n]) {
		n++
	}
	return n
}

// field matches an identifier plus trailing colon, gated on the closed
// vocabulary. A colon-terminated word outside the vocabulary is not a
// field and falls through to later rules.
func (s *Scanner) field(in []rune, pos int) int {
	n := word(in, pos)
	if n == 0 || pos+n >= len(in) || in[pos+n] != ':' {
		return 0
	}
	if !s.fields[strings.ToLower(string(in[pos:pos+n]))] {
		return 0
	}
	return n + 1
}

func (s *Scanner) macro(in []rune, pos int) int {
	if in[pos] != '@' {
		return 0
	}
	n := 0
	for pos+1+n < len(in) && isWordRune(in[pos+1+n]) {
		n++
	}
	if n == 0 {
		return 0
	}
	return n + 1
}

// quoted returns a rule consumer for a string delimited by quote.
// A backslash shields the following rune from the terminator check only;
// the raw text, backslashes included, lands in the token verbatim.
// An unterminated string runs to end of input rather than failing.
func quoted(quote rune) func(s *Scanner, in []rune, pos int) int {
	return func(s *Scanner, in []rune, pos int) int {
		if in[pos] != quote {
			return 0
		}
		i := pos + 1
		for i < len(in) {
			if in[i] == '\\' {
				i += 2
				continue
			}
			if in[i] == quote {
				return i - pos + 1
			}
			i++
		}
		return len(in) - pos
	}
}

// proximity matches /N, a within-N-tokens operator. The digit run must end
// the word, otherwise the slash is left for the regex rule (so /5th/ scans
// as a pattern while /5 is an operator).
func (s *Scanner) proximity(in []rune, pos int) int {
	if in[pos] != '/' {
		return 0
	}
	n := 0
	for pos+1+n < len(in) && unicode.IsDigit(in[pos+1+n]) {
		n++
	}
	if n == 0 {
		return 0
	}
	if pos+1+n < len(in) && isWordRune(in[pos+1+n]) {
		return 0
	}
	return n + 1
}

// regex matches a slash-delimited pattern, to the next unescaped slash or
// end of input.
func (s *Scanner) regex(in []rune, pos int) int {
	if in[pos] != '/' {
		return 0
	}
	i := pos + 1
	for i < len(in) {
		if in[i] == '\\' {
			i += 2
			continue
		}
		if in[i] == '/' {
			return i - pos + 1
		}
		i++
	}
	return len(in) - pos
}

func (s *Scanner) boolOp(in []rune, pos int) int {
	switch in[pos] {
	case '|', '&', '!':
		return 1
	}
	return 0
}

func (s *Scanner) paren(in []rune, pos int) int {
	switch in[pos] {
	case '(', ')':
		return 1
	}
	return 0
}

// word matches an identifier run, [A-Za-z_]\w*.
func word(in []rune, pos int) int {
	if !unicode.IsLetter(in[pos]) && in[pos] != '_' {
		return 0
	}
	n := 1
	for pos+n < len(in) && isWordRune(in[pos+n]) {
		n++
	}
	return n
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
