package vellum

import (
	"strings"

	nt "vellum/entity"
)

// opText renders chip operators the way the serialized query reads.
var opText = map[nt.ChipOp]string{
	nt.OpOr:     "OR",
	nt.OpAnd:    "AND",
	nt.OpNot:    "NOT",
	nt.OpAndNot: "AND NOT",
}

// Serialize renders a chip sequence as query text scoped to a field.
// The first chip's operator is suppressed, nothing precedes it; later
// chips read left to right in sequence order.
func Serialize(field string, chipSeq []nt.FilterChip) string {

	if len(chipSeq) == 0 {
		return ""
	}

	var bld strings.Builder
	if field != "" {
		bld.WriteString(field)
		bld.WriteString(":")
	}

	bld.WriteString(quoteValue(chipSeq[0].Value))
	for _, chip := range chipSeq[1:] {
		bld.WriteString(" ")
		bld.WriteString(opText[chip.Op])
		bld.WriteString(" ")
		bld.WriteString(quoteValue(chip.Value))
	}

	return bld.String()
}

// quoteValue wraps a value in double quotes when it would not survive as a
// bare word in query text, escaping backslashes and quotes.
func quoteValue(value string) string {

	if value != "" && !strings.ContainsAny(value, " \t\"'|&!():/@") {
		return value
	}

	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}
