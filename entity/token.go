package entity

// TokenType classifies a scanned substring for highlighting.
type TokenType string

const (
	FieldToken      TokenType = "field"      // recognized field name plus trailing colon
	OperatorToken   TokenType = "operator"   // | & ! and /N proximity
	StringToken     TokenType = "string"     // single or double quoted run
	RegexToken      TokenType = "regex"      // slash-delimited pattern
	MacroToken      TokenType = "macro"      // @name reference, expanded server side
	KeywordToken    TokenType = "keyword"    // AND OR NOT NEAR
	ParenToken      TokenType = "paren"      // ( or )
	WhitespaceToken TokenType = "whitespace" // run of whitespace
	PlainToken      TokenType = "plain"      // anything else
)

// Token is a classified, position-tagged substring of a query line.
// Start and End are half-open rune offsets into the scanned input.
// Tokens for a given input tile it completely: each token's End is the
// next token's Start, and concatenating Text in order reproduces the input.
type Token struct {
	Type  TokenType
	Text  string
	Start int
	End   int
}
