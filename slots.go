package vector

import "fmt"

// Bulk operations over slot ranges. Each multi-slot operation that can
// fail cleans up the slots it already filled before reporting the error,
// so a caller never observes a half-built range: destruction of the
// partial result runs in reverse, last filled slot first.

// wrapElem ties an element hook failure to the slot it occurred at.
func wrapElem(op string, i int, err error) error {
	return fmt.Errorf("vector: %s element %d: %w", op, i, err)
}

// constructRange default-constructs every slot of dst. base is the
// absolute position of dst's first slot, used only for error reporting.
func constructRange[T any](f *Funcs[T], dst []T, base int) error {
	if f.New == nil {
		return nil // slots are already zeroed
	}
	for i := range dst {
		x, err := f.New()
		if err != nil {
			destroyReverse(f, dst[:i])
			return wrapElem("construct", base+i, err)
		}
		dst[i] = x
	}
	return nil
}

// copyRange duplicates src into the dead slots of dst. On failure the
// duplicates made so far are destroyed and src is left untouched. base
// is the absolute position of the range's first element, used only for
// error reporting.
func copyRange[T any](f *Funcs[T], dst, src []T, base int) error {
	if f.trivial() {
		copy(dst, src)
		return nil
	}
	for i := range src {
		x, err := f.copyOf(&src[i])
		if err != nil {
			destroyReverse(f, dst[:i])
			return wrapElem("copy", base+i, err)
		}
		dst[i] = x
	}
	return nil
}

// moveRange transfers src into the dead slots of dst, resetting each
// source slot as it goes. On failure the values already moved are
// destroyed in dst; the sources they came from are gone, so the caller
// can only offer the basic guarantee on this path. base is the absolute
// position of src's first element, used only for error reporting.
func moveRange[T any](f *Funcs[T], dst, src []T, base int) error {
	if f.Move == nil {
		copy(dst, src)
		return nil
	}
	for i := range src {
		x, err := f.Move(&src[i])
		if err != nil {
			destroyReverse(f, dst[:i])
			return wrapElem("move", base+i, err)
		}
		dst[i] = x
	}
	return nil
}

// relocateRange carries live elements into a replacement block, moving
// or copying per the descriptor's relocation rule.
func relocateRange[T any](f *Funcs[T], dst, src []T, base int) error {
	if f.relocateByMove() {
		return moveRange(f, dst, src, base)
	}
	return copyRange(f, dst, src, base)
}

// destroyRange disposes of every live slot in s, first to last. Used on
// slots that stay part of the current block, so it zeroes them to keep
// dropped values collectable.
func destroyRange[T any](f *Funcs[T], s []T) {
	if f.Drop == nil {
		clear(s)
		return
	}
	for i := range s {
		f.dispose(&s[i])
	}
}

// discardRange destroys the originals left in a block that is about to
// be dropped wholesale. Unlike destroyRange it never zeroes slots when
// there is no Drop hook: the block is discarded as a unit, and stale
// views taken before the reallocation keep reading its old contents.
func discardRange[T any](f *Funcs[T], s []T) {
	if f.Drop == nil {
		return
	}
	for i := range s {
		f.dispose(&s[i])
	}
}

// destroyReverse disposes of every live slot in s, last to first. Used
// to unwind partially completed operations.
func destroyReverse[T any](f *Funcs[T], s []T) {
	if f.Drop == nil {
		clear(s)
		return
	}
	for i := len(s) - 1; i >= 0; i-- {
		f.dispose(&s[i])
	}
}

// assign overwrites the live slot dst with a duplicate of *src. The old
// value is disposed of only after the duplicate exists, so a failed copy
// leaves dst unchanged.
func assign[T any](f *Funcs[T], dst, src *T) error {
	x, err := f.copyOf(src)
	if err != nil {
		return err
	}
	f.dispose(dst)
	*dst = x
	return nil
}

// moveAssign overwrites the live slot dst with *src's value, resetting
// *src. A failed move leaves both slots unchanged.
func moveAssign[T any](f *Funcs[T], dst, src *T) error {
	x, err := f.moveOf(src)
	if err != nil {
		return err
	}
	f.dispose(dst)
	*dst = x
	return nil
}
