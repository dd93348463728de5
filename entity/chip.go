package entity

// ChipOp relates a filter chip to the chips accumulated before it.
type ChipOp int

const (
	OpOr ChipOp = iota
	OpAnd
	OpNot
	OpAndNot
)

var opNames = map[ChipOp]string{
	OpOr:     "OR",
	OpAnd:    "AND",
	OpNot:    "NOT",
	OpAndNot: "AND_NOT",
}

func (op ChipOp) String() string {
	name, ok := opNames[op]
	if !ok {
		return "OR"
	}
	return name
}

// Next advances through the fixed cycle OR, AND, NOT, AND_NOT and back.
// Every op has exactly one successor, so four advances close the loop.
func (op ChipOp) Next() ChipOp {
	switch op {
	case OpOr:
		return OpAnd
	case OpAnd:
		return OpNot
	case OpNot:
		return OpAndNot
	default:
		return OpOr
	}
}

// FilterChip is one committed value in a multi-value filter control.
// Op is how the chip combines with the chips before it in the sequence;
// the first chip's op is carried but never applied, nothing precedes it.
type FilterChip struct {
	Value string
	Op    ChipOp
}
