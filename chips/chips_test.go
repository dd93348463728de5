package chips

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "vellum/entity"
)

func TestCommit(t *testing.T) {

	set := New()
	set.SetDraft("  foo  ")
	set.Commit(set.Draft())

	require.Equal(t, 1, set.Len())
	assert.Equal(t, nt.FilterChip{Value: "foo", Op: nt.OpOr}, set.Chips()[0])
	assert.Equal(t, "", set.Draft())

	// whitespace-only commit is a silent no-op
	set.Commit("   ")
	assert.Equal(t, 1, set.Len())

	// duplicate values are independent chips
	set.Commit("foo")
	assert.Equal(t, 2, set.Len())
}

func TestBlurCommit(t *testing.T) {

	set := New()
	set.SetDraft("basket")
	set.BlurCommit()

	require.Equal(t, 1, set.Len())
	assert.Equal(t, "basket", set.Chips()[0].Value)
	assert.Equal(t, "", set.Draft())

	// empty draft, nothing to commit
	set.BlurCommit()
	assert.Equal(t, 1, set.Len())
}

func TestRetargetCycle(t *testing.T) {

	set := New()
	set.Commit("a")
	set.Commit("b")

	// four advances close the loop, in order
	expected := []nt.ChipOp{nt.OpAnd, nt.OpNot, nt.OpAndNot, nt.OpOr}
	for _, op := range expected {
		set.Retarget(1)
		assert.Equal(t, op, set.Chips()[1].Op)
	}

	// first chip's op is never meaningful, retarget is a no-op there
	set.Retarget(0)
	assert.Equal(t, nt.OpOr, set.Chips()[0].Op)

	// out of range is a no-op
	set.Retarget(5)
	set.Retarget(-1)
	assert.Equal(t, nt.OpOr, set.Chips()[1].Op)
}

func TestRemoveAt(t *testing.T) {

	set := New()
	set.Commit("a")
	set.Commit("b")
	set.Commit("c")
	set.Retarget(1)
	set.Retarget(2)
	set.Retarget(2)

	// removing a chip does not reinterpret neighboring operators
	set.RemoveAt(1)
	require.Equal(t, 2, set.Len())
	assert.Equal(t, "a", set.Chips()[0].Value)
	assert.Equal(t, "c", set.Chips()[1].Value)
	assert.Equal(t, nt.OpNot, set.Chips()[1].Op)

	// out of range is a no-op
	set.RemoveAt(7)
	set.RemoveAt(-1)
	assert.Equal(t, 2, set.Len())
}

func TestBackspaceOnEmptyDraft(t *testing.T) {

	set := New()
	set.Commit("a")
	set.Commit("b")
	set.Commit("c")

	set.BackspaceOnEmptyDraft()
	require.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"a", "b"}, values(set))

	// non-empty draft leaves the chips alone
	set.SetDraft("typing")
	set.BackspaceOnEmptyDraft()
	assert.Equal(t, 2, set.Len())

	// empty set, empty draft, nothing to do
	set.SetDraft("")
	set.BackspaceOnEmptyDraft()
	set.BackspaceOnEmptyDraft()
	set.BackspaceOnEmptyDraft()
	assert.Equal(t, 0, set.Len())
}

func TestChipsIsCopy(t *testing.T) {

	set := New()
	set.Commit("a")

	chips := set.Chips()
	chips[0].Value = "mutated"
	assert.Equal(t, "a", set.Chips()[0].Value)
}

// end-to-end per the control's keystroke paths: two commits then one badge
// click on the second chip
func TestBuildSequence(t *testing.T) {

	set := New()
	set.SetDraft("permitted")
	set.Commit(set.Draft())
	set.SetDraft("basket")
	set.Commit(set.Draft())
	set.Retarget(1)

	assert.Equal(t, []nt.FilterChip{
		{Value: "permitted", Op: nt.OpOr},
		{Value: "basket", Op: nt.OpAnd},
	}, set.Chips())
}

func values(set *Set) []string {
	out := []string{}
	for _, chip := range set.Chips() {
		out = append(out, chip.Value)
	}
	return out
}
