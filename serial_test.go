package vellum

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	nt "vellum/entity"
	"vellum/scan"
)

func TestSerialize(t *testing.T) {

	assert.Equal(t, "", Serialize("heading", nil))

	chipSeq := []nt.FilterChip{
		{Value: "permitted", Op: nt.OpOr},
		{Value: "basket", Op: nt.OpAnd},
	}
	assert.Equal(t, "heading:permitted AND basket", Serialize("heading", chipSeq))

	// first chip's op is suppressed whatever it is
	chipSeq[0].Op = nt.OpAndNot
	assert.Equal(t, "heading:permitted AND basket", Serialize("heading", chipSeq))

	chipSeq = append(chipSeq, nt.FilterChip{Value: "restricted payment", Op: nt.OpAndNot})
	assert.Equal(t, `heading:permitted AND basket AND NOT "restricted payment"`, Serialize("heading", chipSeq))

	chipSeq = []nt.FilterChip{{Value: `say "when"`, Op: nt.OpOr}}
	assert.Equal(t, `clause:"say \"when\""`, Serialize("clause", chipSeq))
}

// serialized output tokenizes back with the field colored as a field, so
// the compose line never fights the highlighter
func TestSerializeScans(t *testing.T) {

	scanner := scan.New([]string{"heading"})
	chipSeq := []nt.FilterChip{
		{Value: "permitted basket", Op: nt.OpOr},
		{Value: "sweep", Op: nt.OpNot},
	}

	text := Serialize("heading", chipSeq)
	tokens := scanner.Scan(text)

	assert.Equal(t, nt.FieldToken, tokens[0].Type)
	assert.Equal(t, "heading:", tokens[0].Text)

	joined := []string{}
	for _, tok := range tokens {
		joined = append(joined, tok.Text)
	}
	assert.Equal(t, text, strings.Join(joined, ""))
}
