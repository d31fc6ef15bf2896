package vector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The tests in this file inject failures into element lifecycle hooks
// and verify the guarantee each operation documents: strong (vector
// exactly as before the call) for Make, Clone, Reserve, the reallocating
// CopyFrom path, and growth-path Insert/Emplace; basic (valid vector,
// affected range unspecified) for the in-place paths.

var errInjected = errors.New("injected failure")

// failingCopy returns a Copy hook that succeeds ok times, then fails.
func failingCopy(ok int) func(src *int) (int, error) {
	calls := 0
	return func(src *int) (int, error) {
		calls++
		if calls > ok {
			return 0, errInjected
		}
		return *src, nil
	}
}

// failingMove returns a Move hook that succeeds ok times, then fails.
// A failing call leaves its source untouched, per the hook contract.
func failingMove(ok int) func(src *int) (int, error) {
	calls := 0
	return func(src *int) (int, error) {
		calls++
		if calls > ok {
			return 0, errInjected
		}
		x := *src
		*src = 0
		return x, nil
	}
}

// dropRecorder collects the values Drop sees, in order.
func dropRecorder(into *[]int) func(x *int) {
	return func(x *int) { *into = append(*into, *x) }
}

func fill(t *testing.T, v *Vector[int], xs ...int) {
	t.Helper()
	for _, x := range xs {
		require.NoError(t, v.PushBack(x))
	}
}

func TestMakeRollsBackOnConstructFailure(t *testing.T) {
	var dropped []int
	next := 0
	_, err := Make[int](10, Funcs[int]{
		New: func() (int, error) {
			if next == 3 {
				return 0, errInjected
			}
			next++
			return next, nil
		},
		Drop: dropRecorder(&dropped),
	})

	require.ErrorIs(t, err, errInjected)
	// The three elements built before the failure, destroyed last first.
	assert.Equal(t, []int{3, 2, 1}, dropped)
}

func TestCloneRollsBackOnCopyFailure(t *testing.T) {
	var dropped []int
	v := New[int](Funcs[int]{
		Copy: failingCopy(6), // 4 appends, then 2 of the 4 clone copies
		Drop: dropRecorder(&dropped),
	})
	fill(t, v, 1, 2, 3, 4)

	dropped = nil
	_, err := v.Clone()

	require.ErrorIs(t, err, errInjected)
	assert.Equal(t, []int{2, 1}, dropped) // partial copies, reverse order
	assert.Equal(t, []int{1, 2, 3, 4}, v.Slice())
}

func TestReserveStrongGuarantee(t *testing.T) {
	// Copy and a failable Move: relocation must choose copying, so the
	// originals stay in place until every duplicate exists.
	moved := 0
	v := New[int](Funcs[int]{
		Copy: failingCopy(6), // 4 appends, then fails at the 3rd relocation copy
		Move: func(src *int) (int, error) { moved++; x := *src; *src = 0; return x, nil },
	})
	require.NoError(t, v.Reserve(4))
	fill(t, v, 1, 2, 3, 4)

	addrs := make([]*int, v.Len())
	for i := range addrs {
		addrs[i] = v.At(i)
	}

	err := v.Reserve(100)

	require.ErrorIs(t, err, errInjected)
	assert.Zero(t, moved) // a failable move is never used for relocation
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 4, v.Cap())
	assert.Equal(t, []int{1, 2, 3, 4}, v.Slice())
	for i, a := range addrs {
		assert.Same(t, a, v.At(i), "element %d relocated despite failure", i)
	}
}

func TestReserveMovesWhenDeclaredNonFailing(t *testing.T) {
	moved, copied := 0, 0
	v := New[int](Funcs[int]{
		Copy:   func(src *int) (int, error) { copied++; return *src, nil },
		Move:   func(src *int) (int, error) { moved++; x := *src; *src = 0; return x, nil },
		MoveOK: true,
	})
	fill(t, v, 1, 2, 3)

	moved, copied = 0, 0
	require.NoError(t, v.Reserve(10))

	assert.Equal(t, 3, moved)
	assert.Zero(t, copied)
	assert.Equal(t, []int{1, 2, 3}, v.Slice())
}

func TestGrowthInsertStrongGuarantee(t *testing.T) {
	tests := []struct {
		name string
		ok   int // successful relocation copies before the failure
	}{
		{"prefix fails", 1},
		{"suffix fails", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dropped []int
			v := New[int](Funcs[int]{
				Copy: failingCopy(4 + tt.ok), // 4 appends, then tt.ok relocations
				Move: failingMove(1 << 30),   // failable, so relocation copies
				Drop: dropRecorder(&dropped),
			})
			require.NoError(t, v.Reserve(4))
			fill(t, v, 1, 2, 3, 4)
			require.Equal(t, v.Cap(), v.Len()) // at capacity: next insert grows

			before := append([]int{}, v.Slice()...)
			dropped = nil

			err := v.Emplace(2, func() (int, error) { return 99, nil })

			require.ErrorIs(t, err, errInjected)
			assert.Equal(t, 4, v.Len())
			assert.Equal(t, 4, v.Cap())
			assert.Equal(t, before, v.Slice())
			// Everything built in the discarded block was destroyed.
			assert.Contains(t, dropped, 99)
		})
	}
}

func TestGrowthInsertCtorFailureLeavesVectorUntouched(t *testing.T) {
	v := New[int]()
	fill(t, v, 1, 2)
	require.Equal(t, v.Cap(), v.Len())

	err := v.Emplace(1, func() (int, error) { return 0, errInjected })

	require.ErrorIs(t, err, errInjected)
	assert.Equal(t, []int{1, 2}, v.Slice())
	assert.Equal(t, 2, v.Cap()) // the discarded block is not adopted
}

func TestMiddleInsertShiftFailureBasicGuarantee(t *testing.T) {
	// Below capacity, inserting before the end first moves the last
	// element into the free slot past the end, then shifts the range
	// right by move-assignment. Fail on the first shift move: the slot
	// extended past the old end must be destroyed so no element leaks.
	var dropped []int
	v := New[int](Funcs[int]{
		Move:   failingMove(2), // insert's own move, the extend move, then fail
		MoveOK: true,           // declared non-failing; the injection violates it
		Drop:   dropRecorder(&dropped),
	})
	require.NoError(t, v.Reserve(8))
	fill(t, v, 1, 2, 3)

	dropped = nil
	x := 99
	err := v.InsertMoved(1, &x)

	require.ErrorIs(t, err, errInjected)
	assert.Equal(t, 3, v.Len()) // length preserved, shifted range unspecified
	assert.Contains(t, dropped, 99)
}

func TestCopyFromReallocatingPathStrongGuarantee(t *testing.T) {
	// Copying the source's elements fails partway through building the
	// replacement; the target never sees the partial copy.
	src := New[int](Funcs[int]{Copy: failingCopy(8)}) // 5 appends + 3 clone copies
	fill(t, src, 1, 2, 3, 4, 5)

	dst := New[int]()
	fill(t, dst, 8, 9)

	err := dst.CopyFrom(src)

	require.ErrorIs(t, err, errInjected)
	assert.Equal(t, []int{8, 9}, dst.Slice()) // built aside, target intact
	assert.Equal(t, []int{1, 2, 3, 4, 5}, src.Slice())
}

func TestCopyFromInPlaceTailFailure(t *testing.T) {
	src := New[int]()
	fill(t, src, 1, 2, 3, 4)

	// 2 appends + 2 prefix assignments + 1 tail copy succeed, then fail.
	dst := New[int](Funcs[int]{Copy: failingCopy(5)})
	require.NoError(t, dst.Reserve(8))
	fill(t, dst, 8, 9)

	err := dst.CopyFrom(src)

	require.ErrorIs(t, err, errInjected)
	// The reported index is the failing slot's position in the vector,
	// not its offset within the tail being appended.
	assert.EqualError(t, err, "vector: copy element 3: injected failure")
	// Basic guarantee: the prefix was updated, the length was not.
	assert.Equal(t, 2, dst.Len())
	assert.Equal(t, []int{1, 2}, dst.Slice())
}

func TestResizeConstructFailureKeepsLength(t *testing.T) {
	var dropped []int
	built := 0
	v := New[int](Funcs[int]{
		New: func() (int, error) {
			if built == 2 {
				return 0, errInjected
			}
			built++
			return 10 + built, nil
		},
		Drop: dropRecorder(&dropped),
	})
	require.NoError(t, v.Reserve(8))
	fill(t, v, 1)

	dropped = nil
	err := v.Resize(5)

	require.ErrorIs(t, err, errInjected)
	assert.EqualError(t, err, "vector: construct element 3: injected failure")
	assert.Equal(t, 1, v.Len()) // length unchanged, capacity may have grown
	assert.Equal(t, []int{1}, v.Slice())
	assert.Equal(t, []int{12, 11}, dropped) // partial tail unwound in reverse
}

func TestEraseMoveFailure(t *testing.T) {
	v := New[int](Funcs[int]{
		Move:   failingMove(1),
		MoveOK: true,
	})
	require.NoError(t, v.Reserve(4))
	fill(t, v, 1, 2, 3, 4)

	err := v.Erase(0)

	require.ErrorIs(t, err, errInjected)
	assert.Equal(t, 4, v.Len()) // nothing popped; shifted range unspecified
}

func TestNoCopyGrowthMoveFailureBasicGuarantee(t *testing.T) {
	// With copying unavailable, relocation is forced to move even though
	// the move can fail; only the basic guarantee is possible because the
	// sources already relocated are consumed.
	v := New[int](Funcs[int]{
		Move:   failingMove(10), // 7 calls filling, 3 relocating, then fail
		NoCopy: true,
	})
	for i := 1; i <= 4; i++ {
		x := i
		require.NoError(t, v.InsertMoved(v.Len(), &x))
	}
	require.Equal(t, v.Cap(), v.Len())

	x := 99
	err := v.InsertMoved(2, &x)

	require.ErrorIs(t, err, errInjected)
	assert.Equal(t, 4, v.Len()) // still valid: length kept, values unspecified
	v.Release()                 // and still destructible
}

func TestFailureErrorsCarryOperationAndIndex(t *testing.T) {
	v := New[int](Funcs[int]{Copy: failingCopy(0)})

	err := v.PushBack(7)

	require.ErrorIs(t, err, errInjected)
	assert.EqualError(t, err, "vector: construct element 0: injected failure")
}
