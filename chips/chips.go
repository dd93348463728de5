// Package chips holds the ordered value/operator pairs behind a
// multi-value filter control.
package chips

import (
	"strings"

	nt "vellum/entity"
)

// Set is the chip sequence plus the in-progress draft for one filter field.
// Order is significant: each chip's op relates it to the chips before it,
// and chips are addressed by position, never by value, so duplicate values
// stay independently removable. Each control owns its own Set.
type Set struct {
	chips []nt.FilterChip
	draft string
}

// New creates an empty Set.
func New() *Set {
	return &Set{}
}

// Chips returns a copy of the chip sequence for serialization or display.
func (set *Set) Chips() []nt.FilterChip {
	out := make([]nt.FilterChip, len(set.chips))
	copy(out, set.chips)
	return out
}

// Len returns the number of committed chips.
func (set *Set) Len() int {
	return len(set.chips)
}

// Draft returns the uncommitted text.
func (set *Set) Draft() string {
	return set.draft
}

// SetDraft replaces the uncommitted text as the user types.
func (set *Set) SetDraft(text string) {
	set.draft = text
}

// Commit trims text and appends it as a chip with the default OR operator,
// clearing the draft. A whitespace-only commit is a no-op, not an error.
func (set *Set) Commit(text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}

	set.chips = append(set.chips, nt.FilterChip{Value: trimmed, Op: nt.OpOr})
	set.draft = ""
}

// BlurCommit commits the draft when focus leaves the control, so typed
// text is never silently dropped.
func (set *Set) BlurCommit() {
	if set.draft == "" {
		return
	}
	set.Commit(set.draft)
}

// RemoveAt removes the chip at index. Operators of the remaining chips are
// untouched; each op belongs to its own chip, not to the gap it left.
func (set *Set) RemoveAt(index int) {
	if index < 0 || index >= len(set.chips) {
		return
	}
	set.chips = append(set.chips[:index], set.chips[index+1:]...)
}

// Retarget advances the chip's operator one step around the cycle
// OR, AND, NOT, AND_NOT. The first chip's op is never applied, so
// retargeting index 0 is a no-op.
func (set *Set) Retarget(index int) {
	if index <= 0 || index >= len(set.chips) {
		return
	}
	set.chips[index].Op = set.chips[index].Op.Next()
}

// BackspaceOnEmptyDraft removes the last chip, an undo-last-entry
// affordance for the empty-draft keystroke path. With text in the draft
// the keystroke belongs to the draft and the chips are left alone.
func (set *Set) BackspaceOnEmptyDraft() {
	if set.draft != "" || len(set.chips) == 0 {
		return
	}
	set.chips = set.chips[:len(set.chips)-1]
}
