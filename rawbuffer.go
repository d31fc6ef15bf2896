package vector

import (
	"errors"
	"math"
	"unsafe"
)

// ErrTooLarge is returned when a requested capacity's byte size does not
// fit in an int. Allocation failure beyond that is a runtime panic and is
// not recoverable.
var ErrTooLarge = errors.New("vector: required capacity overflows int")

// RawBuffer owns a single fixed-capacity block of element slots. It tracks
// no element lifetimes: slots are allocated zeroed, and the layer above
// decides which of them hold live values. The zero value is the empty
// sentinel (capacity 0, no allocation).
//
// A RawBuffer must not be duplicated by struct assignment; ownership moves
// only through TakeFrom and SwapWith.
type RawBuffer[T any] struct {
	slots []T // len == cap == block capacity; nil when empty
}

// NewRawBuffer allocates a block of exactly n element slots in one
// allocation. n == 0 yields the empty sentinel without allocating.
// A negative n panics. If n elements cannot be addressed in memory
// (the byte size overflows int), NewRawBuffer fails with ErrTooLarge.
func NewRawBuffer[T any](n int) (RawBuffer[T], error) {
	if n < 0 {
		panic("vector: negative capacity")
	}
	if n == 0 {
		return RawBuffer[T]{}, nil
	}
	var zero T
	if size := unsafe.Sizeof(zero); size > 0 && n > math.MaxInt/int(size) {
		return RawBuffer[T]{}, ErrTooLarge
	}
	return RawBuffer[T]{slots: make([]T, n)}, nil
}

// Cap returns the number of slots the block can hold.
func (b *RawBuffer[T]) Cap() int {
	return len(b.slots)
}

// At returns the address of slot i. Valid for i in [0, Cap()); the
// one-past-end position is addressable only through Slice, never as a
// dereferenceable pointer.
func (b *RawBuffer[T]) At(i int) *T {
	if i < 0 || i >= len(b.slots) {
		panic("vector: slot index out of range")
	}
	return &b.slots[i]
}

// Slice returns a view over slots [i, j). Both bounds may equal Cap(), so
// Slice(Cap(), Cap()) is the legal empty view at the end of the block.
func (b *RawBuffer[T]) Slice(i, j int) []T {
	if i < 0 || j < i || j > len(b.slots) {
		panic("vector: slot range out of bounds")
	}
	return b.slots[i:j:j]
}

// Release drops the block and resets the buffer to the empty sentinel.
// It never runs element cleanup, since the buffer has no notion of which
// slots are live. Safe to call on the empty sentinel, and the buffer
// remains usable afterward.
func (b *RawBuffer[T]) Release() {
	b.slots = nil
}

// TakeFrom transfers ownership of o's block to b in constant time. Any
// block b currently owns is released first; o is reset to the empty
// sentinel. No slot contents are copied.
func (b *RawBuffer[T]) TakeFrom(o *RawBuffer[T]) {
	if b == o {
		return
	}
	b.slots = o.slots
	o.slots = nil
}

// SwapWith exchanges the blocks owned by b and o in constant time.
func (b *RawBuffer[T]) SwapWith(o *RawBuffer[T]) {
	b.slots, o.slots = o.slots, b.slots
}
