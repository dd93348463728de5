package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "vellum/entity"
)

var testFields = []string{
	"heading", "clause", "section", "article", "defined_term",
	"template", "vintage", "market", "doc_type", "admin_agent",
	"facility_size_mm",
}

func types(tokens []nt.Token) []nt.TokenType {
	out := make([]nt.TokenType, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Type
	}
	return out
}

func texts(tokens []nt.Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

func TestScanCoverage(t *testing.T) {

	inputs := []string{
		"",
		"heading:\"permitted basket\" | clause:/sweep/",
		"bogus:x & (NOT foo)",
		"\"unterminated",
		"'also unterminated",
		"/regex with no close",
		"trailing backslash \"a\\",
		"@macro /5 NEAR !bar",
		"   ",
		"日本語 mixed ascii_1:",
	}

	scanner := New(testFields)
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tokens := scanner.Scan(input)

			// concatenation reproduces the input exactly
			assert.Equal(t, input, strings.Join(texts(tokens), ""))

			// contiguous, non-overlapping, half-open offsets
			pos := 0
			for _, tok := range tokens {
				assert.Equal(t, pos, tok.Start)
				assert.Greater(t, tok.End, tok.Start)
				assert.Equal(t, tok.Text, string([]rune(input)[tok.Start:tok.End]))
				pos = tok.End
			}
			assert.Equal(t, len([]rune(input)), pos)
		})
	}
}

func TestScanPure(t *testing.T) {

	scanner := New(testFields)
	input := `heading:"basket" | /5 @std NOT (x)`

	assert.Equal(t, scanner.Scan(input), scanner.Scan(input))
}

func TestScanFieldGate(t *testing.T) {

	scanner := New(testFields)

	tokens := scanner.Scan("heading:x")
	require.Len(t, tokens, 2)
	assert.Equal(t, nt.FieldToken, tokens[0].Type)
	assert.Equal(t, "heading:", tokens[0].Text)
	assert.Equal(t, nt.PlainToken, tokens[1].Type)

	// unrecognized prefix must not be colored as a field
	tokens = scanner.Scan("bogus_field:x")
	for _, tok := range tokens {
		assert.NotEqual(t, nt.FieldToken, tok.Type)
	}

	// case-insensitive membership
	tokens = scanner.Scan("HEADING:x")
	assert.Equal(t, nt.FieldToken, tokens[0].Type)
}

func TestScanQuotes(t *testing.T) {

	scanner := New(testFields)

	// escaped quote does not terminate the string
	tokens := scanner.Scan(`"a\"b"`)
	require.Len(t, tokens, 1)
	assert.Equal(t, nt.StringToken, tokens[0].Type)
	assert.Equal(t, `"a\"b"`, tokens[0].Text)

	// single quotes work the same way
	tokens = scanner.Scan(`'a\'b'`)
	require.Len(t, tokens, 1)
	assert.Equal(t, nt.StringToken, tokens[0].Type)

	// unterminated runs to end of input rather than failing
	tokens = scanner.Scan(`"still typing`)
	require.Len(t, tokens, 1)
	assert.Equal(t, nt.StringToken, tokens[0].Type)
	assert.Equal(t, `"still typing`, tokens[0].Text)
}

func TestScanSlash(t *testing.T) {

	scanner := New(testFields)

	// bare digits after slash is a proximity operator
	tokens := scanner.Scan("/5")
	require.Len(t, tokens, 1)
	assert.Equal(t, nt.OperatorToken, tokens[0].Type)
	assert.Equal(t, "/5", tokens[0].Text)

	// anything else opens a regex
	tokens = scanner.Scan("/abc/")
	require.Len(t, tokens, 1)
	assert.Equal(t, nt.RegexToken, tokens[0].Type)
	assert.Equal(t, "/abc/", tokens[0].Text)

	// digit run continuing into a word is regex, not proximity
	tokens = scanner.Scan("/5th/")
	require.Len(t, tokens, 1)
	assert.Equal(t, nt.RegexToken, tokens[0].Type)

	// escaped slash does not close the regex
	tokens = scanner.Scan(`/a\/b/`)
	require.Len(t, tokens, 1)
	assert.Equal(t, nt.RegexToken, tokens[0].Type)
	assert.Equal(t, `/a\/b/`, tokens[0].Text)
}

func TestScanClassification(t *testing.T) {

	scanner := New(testFields)

	table := []struct {
		name     string
		input    string
		expected []nt.TokenType
	}{
		{
			name:  "booleans and parens",
			input: "(a | b) & !c",
			expected: []nt.TokenType{
				nt.ParenToken, nt.PlainToken, nt.WhitespaceToken, nt.OperatorToken,
				nt.WhitespaceToken, nt.PlainToken, nt.ParenToken, nt.WhitespaceToken,
				nt.OperatorToken, nt.WhitespaceToken, nt.OperatorToken, nt.PlainToken,
			},
		},
		{
			name:     "keywords fold case",
			input:    "and OR Near",
			expected: []nt.TokenType{nt.KeywordToken, nt.WhitespaceToken, nt.KeywordToken, nt.WhitespaceToken, nt.KeywordToken},
		},
		{
			name:     "macro reference",
			input:    "@change_of_control",
			expected: []nt.TokenType{nt.MacroToken},
		},
		{
			name:     "bare at sign is plain",
			input:    "@ x",
			expected: []nt.TokenType{nt.PlainToken, nt.WhitespaceToken, nt.PlainToken},
		},
		{
			name:     "field then well formed string",
			input:    `heading:"permitted basket"`,
			expected: []nt.TokenType{nt.FieldToken, nt.StringToken},
		},
	}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, types(scanner.Scan(tc.input)))
		})
	}
}

func TestScanEmptyVocabulary(t *testing.T) {

	// field gate testable in isolation with a synthetic vocabulary
	scanner := New(nil)
	for _, tok := range scanner.Scan("heading:x") {
		assert.NotEqual(t, nt.FieldToken, tok.Type)
	}

	scanner = New([]string{"zork"})
	tokens := scanner.Scan("zork:x")
	assert.Equal(t, nt.FieldToken, tokens[0].Type)
}
