package vector

import "math"

// Vector is a growable array of T. It owns exactly one RawBuffer; slots
// [0, Len()) hold live elements and slots [Len(), Cap()) are allocated
// but dead. A second buffer exists only transiently inside a growing
// operation and either replaces the current one or is discarded.
//
// A Vector is not goroutine-safe: concurrent mutation requires external
// locking. The zero value is an empty vector of plain values, ready to
// use.
type Vector[T any] struct {
	buf      RawBuffer[T]
	size     int
	fn       Funcs[T]
	reallocs int
}

// New creates an empty vector with no storage. An optional Funcs
// descriptor supplies the element lifecycle; omitting it selects plain
// value semantics.
func New[T any](funcs ...Funcs[T]) *Vector[T] {
	v := &Vector[T]{}
	if len(funcs) > 0 {
		funcs[0].validate()
		v.fn = funcs[0]
	}
	return v
}

// Make creates a vector of n default-constructed elements with capacity
// exactly n. If constructing element k fails, elements [0, k) are
// destroyed in reverse order and the storage is released before the
// error returns, so no partial vector is ever observable.
func Make[T any](n int, funcs ...Funcs[T]) (*Vector[T], error) {
	if n < 0 {
		panic("vector: negative size")
	}
	v := New[T](funcs...)
	buf, err := NewRawBuffer[T](n)
	if err != nil {
		return nil, err
	}
	v.buf = buf
	if err := constructRange(&v.fn, v.buf.Slice(0, n), 0); err != nil {
		v.buf.Release()
		return nil, err
	}
	v.size = n
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of allocated element slots.
func (v *Vector[T]) Cap() int { return v.buf.Cap() }

// At returns the address of element i. The pointer stays memory-safe
// for as long as the caller holds it, but detaches from the vector once
// any reallocating or shifting operation runs.
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic("vector: index out of range")
	}
	return v.buf.At(i)
}

// Slice returns a view over the live elements [0, Len()). Like At, the
// view goes stale after any reallocating or shifting operation.
func (v *Vector[T]) Slice() []T {
	return v.buf.Slice(0, v.size)
}

// ForEach calls op on every live element in order, stopping at the
// first error, which it returns unchanged.
func (v *Vector[T]) ForEach(op func(i int, x *T) error) error {
	for i := 0; i < v.size; i++ {
		if err := op(i, v.buf.At(i)); err != nil {
			return err
		}
	}
	return nil
}

// Clone creates an independent copy with capacity equal to the source's
// length. Copy failure at element k destroys the duplicates [0, k) in
// reverse order before the error returns.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{fn: v.fn}
	if v.size == 0 {
		return c, nil
	}
	buf, err := NewRawBuffer[T](v.size)
	if err != nil {
		return nil, err
	}
	c.buf = buf
	if err := copyRange(&v.fn, c.buf.Slice(0, v.size), v.buf.Slice(0, v.size), 0); err != nil {
		c.buf.Release()
		return nil, err
	}
	c.size = v.size
	return c, nil
}

// CopyFrom makes v an element-wise copy of o.
//
// When o's elements do not fit in v's current capacity, a full copy is
// built aside and swapped in, so on failure v is untouched. When they
// do fit, existing storage is reused to avoid reallocation: the common
// prefix is overwrite-assigned, then either the extra elements are
// copy-constructed into dead slots or the excess tail is destroyed.
func (v *Vector[T]) CopyFrom(o *Vector[T]) error {
	if v == o {
		return nil
	}
	if o.size > v.buf.Cap() {
		c, err := o.Clone()
		if err != nil {
			return err
		}
		// Swap exchanges the lifecycle descriptors and the realloc count
		// along with the storage; both belong to v, so put them back. c
		// keeps v's old descriptor, which is the one that must destroy
		// v's old elements below.
		fn, r := v.fn, v.reallocs
		v.Swap(c)
		v.fn, v.reallocs = fn, r+1
		c.Release()
		return nil
	}
	n := min(v.size, o.size)
	if v.fn.trivial() {
		copy(v.buf.Slice(0, n), o.buf.Slice(0, n))
	} else {
		for i := 0; i < n; i++ {
			if err := assign(&v.fn, v.buf.At(i), o.buf.At(i)); err != nil {
				return wrapElem("copy", i, err)
			}
		}
	}
	switch {
	case o.size > v.size:
		if err := copyRange(&v.fn, v.buf.Slice(v.size, o.size), o.buf.Slice(v.size, o.size), v.size); err != nil {
			return err
		}
	case o.size < v.size:
		destroyRange(&v.fn, v.buf.Slice(o.size, v.size))
	}
	v.size = o.size
	return nil
}

// MoveFrom transfers o's elements and storage to v in constant time.
// v's own elements are destroyed first; o ends with Len() == 0 and
// Cap() == 0 but remains usable.
func (v *Vector[T]) MoveFrom(o *Vector[T]) {
	if v == o {
		return
	}
	destroyRange(&v.fn, v.buf.Slice(0, v.size))
	v.buf.TakeFrom(&o.buf)
	v.size = o.size
	o.size = 0
}

// Swap exchanges the contents of v and o in constant time, lifecycle
// descriptors included.
func (v *Vector[T]) Swap(o *Vector[T]) {
	if v == o {
		return
	}
	v.buf.SwapWith(&o.buf)
	v.size, o.size = o.size, v.size
	v.fn, o.fn = o.fn, v.fn
	v.reallocs, o.reallocs = o.reallocs, v.reallocs
}

// Reserve grows capacity to exactly n, relocating every live element
// into the new block and destroying the originals. It is a no-op when
// n <= Cap().
//
// Relocation moves only when moving is declared non-failing or copying
// is unavailable; otherwise it copies, which keeps the original block
// intact if any element fails and lets Reserve leave the vector exactly
// as it was.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		panic("vector: negative capacity")
	}
	if n <= v.buf.Cap() {
		return nil
	}
	nb, err := NewRawBuffer[T](n)
	if err != nil {
		return err
	}
	if err := relocateRange(&v.fn, nb.Slice(0, v.size), v.buf.Slice(0, v.size), 0); err != nil {
		nb.Release()
		return err
	}
	discardRange(&v.fn, v.buf.Slice(0, v.size))
	v.buf.TakeFrom(&nb)
	v.reallocs++
	return nil
}

// Resize sets the element count to n. Shrinking destroys the tail
// [n, Len()); growing reserves capacity for n and default-constructs
// the new tail. If a tail constructor fails, the partially built tail
// is destroyed and Len() is unchanged, though capacity may have grown.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("vector: negative size")
	}
	if n < v.size {
		destroyRange(&v.fn, v.buf.Slice(n, v.size))
		v.size = n
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	if err := constructRange(&v.fn, v.buf.Slice(v.size, n), v.size); err != nil {
		return err
	}
	v.size = n
	return nil
}

// PushBack appends a copy of x. Amortized constant time: when storage
// is full, capacity doubles (starting from 1).
func (v *Vector[T]) PushBack(x T) error {
	return v.Insert(v.size, x)
}

// EmplaceBack appends an element produced by ctor and returns its
// address. A nil ctor default-constructs.
func (v *Vector[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	if err := v.Emplace(v.size, ctor); err != nil {
		return nil, err
	}
	return v.buf.At(v.size - 1), nil
}

// PopBack destroys the last element. Panics on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.fn.dispose(v.buf.At(v.size - 1))
	v.size--
}

// Insert places a copy of x at position i, shifting elements at and
// after i one slot right. i may equal Len() to append.
func (v *Vector[T]) Insert(i int, x T) error {
	return v.emplace(i, func() (T, error) { return v.fn.copyOf(&x) })
}

// InsertMoved places *x's value at position i, resetting *x.
func (v *Vector[T]) InsertMoved(i int, x *T) error {
	return v.emplace(i, func() (T, error) { return v.fn.moveOf(x) })
}

// Emplace constructs an element via ctor directly at position i. A nil
// ctor default-constructs.
//
// When storage is full the element is built into its slot in a fresh
// block before anything is relocated, so a failing ctor leaves the
// vector untouched. Below capacity, inserting before the end shifts
// the tail right by one; if that shift fails the vector keeps its
// length but the order within the shifted range is unspecified.
func (v *Vector[T]) Emplace(i int, ctor func() (T, error)) error {
	if ctor == nil {
		ctor = v.fn.construct
	}
	return v.emplace(i, ctor)
}

func (v *Vector[T]) emplace(i int, ctor func() (T, error)) error {
	if i < 0 || i > v.size {
		panic("vector: position out of range")
	}
	if v.size == v.buf.Cap() {
		return v.emplaceGrow(i, ctor)
	}
	x, err := ctor()
	if err != nil {
		return wrapElem("construct", i, err)
	}
	if i == v.size {
		// Free slot right at the end: construct in place.
		*v.buf.At(v.size) = x
		v.size++
		return nil
	}
	return v.emplaceShift(i, &x)
}

// emplaceShift inserts *tmp before the end without reallocating: the
// last element is moved into the first dead slot, [i, size-1) shifts
// right one slot back to front, and *tmp lands in the vacated slot.
func (v *Vector[T]) emplaceShift(i int, tmp *T) error {
	x, err := v.fn.moveOf(v.buf.At(v.size - 1))
	if err != nil {
		v.fn.dispose(tmp)
		return wrapElem("move", v.size-1, err)
	}
	*v.buf.At(v.size) = x
	for j := v.size - 1; j > i; j-- {
		if err := moveAssign(&v.fn, v.buf.At(j), v.buf.At(j-1)); err != nil {
			v.fn.dispose(v.buf.At(v.size))
			v.fn.dispose(tmp)
			return wrapElem("move", j-1, err)
		}
	}
	if err := moveAssign(&v.fn, v.buf.At(i), tmp); err != nil {
		v.fn.dispose(v.buf.At(v.size))
		v.fn.dispose(tmp)
		return wrapElem("move", i, err)
	}
	v.size++
	return nil
}

// emplaceGrow inserts at position i through a replacement block of
// doubled capacity. The new element is constructed into the new block
// first, then the prefix and suffix are relocated around it; any
// failure destroys what was built in the new block and releases it,
// leaving the current block in place.
func (v *Vector[T]) emplaceGrow(i int, ctor func() (T, error)) error {
	newCap := 1
	if v.size > 0 {
		if v.size > math.MaxInt/2 {
			return ErrTooLarge
		}
		newCap = 2 * v.size
	}
	nb, err := NewRawBuffer[T](newCap)
	if err != nil {
		return err
	}
	x, err := ctor()
	if err != nil {
		nb.Release()
		return wrapElem("construct", i, err)
	}
	*nb.At(i) = x
	if err := relocateRange(&v.fn, nb.Slice(0, i), v.buf.Slice(0, i), 0); err != nil {
		v.fn.dispose(nb.At(i))
		nb.Release()
		return err
	}
	if err := relocateRange(&v.fn, nb.Slice(i+1, v.size+1), v.buf.Slice(i, v.size), i); err != nil {
		destroyReverse(&v.fn, nb.Slice(0, i+1))
		nb.Release()
		return err
	}
	discardRange(&v.fn, v.buf.Slice(0, v.size))
	v.buf.TakeFrom(&nb)
	v.size++
	v.reallocs++
	return nil
}

// Erase removes the element at position i, shifting every later element
// one slot left. It cannot fail for element types whose move cannot
// fail; otherwise a mid-shift failure keeps the length and leaves the
// order within the shifted range unspecified.
func (v *Vector[T]) Erase(i int) error {
	if i < 0 || i >= v.size {
		panic("vector: position out of range")
	}
	if v.fn.trivial() {
		s := v.buf.Slice(0, v.size)
		copy(s[i:], s[i+1:])
	} else {
		for j := i; j+1 < v.size; j++ {
			if err := moveAssign(&v.fn, v.buf.At(j), v.buf.At(j+1)); err != nil {
				return wrapElem("move", j+1, err)
			}
		}
	}
	v.PopBack()
	return nil
}

// Clear destroys all live elements, first to last, keeping capacity.
func (v *Vector[T]) Clear() {
	destroyRange(&v.fn, v.buf.Slice(0, v.size))
	v.size = 0
}

// Release destroys all live elements and drops the storage block. The
// vector remains valid and empty.
func (v *Vector[T]) Release() {
	v.Clear()
	v.buf.Release()
}
