package vector

// Funcs describes how a vector constructs, duplicates, relocates, and
// disposes of its elements. Every field is optional: the zero value
// describes a plain value type that is handled by assignment and can
// never fail, which is the right choice for ints, strings, small structs
// and anything else without an ownership story.
//
// Hooks must observe two contracts. A hook that fails must leave its
// source untouched and return the zero T. Drop must tolerate the zero
// value as a no-op, because slots vacated by a Move hook are reset
// before they are disposed of. A type whose Drop releases a resource
// should therefore also supply a Move that nils the source; without one,
// relocation copies plainly and Drop will see the original values again.
type Funcs[T any] struct {
	// New produces a default value. nil means the zero value.
	New func() (T, error)

	// Copy produces an independent duplicate of *src, leaving *src
	// untouched. nil means plain assignment.
	Copy func(src *T) (T, error)

	// Move transfers *src's value, resetting *src to a state that is
	// safe to Drop (typically the zero value). nil means plain
	// assignment with the source left as is.
	Move func(src *T) (T, error)

	// Drop releases resources owned by *x. nil means no cleanup. The
	// slot is zeroed after Drop returns regardless.
	Drop func(x *T)

	// MoveOK declares that Move never fails, allowing relocation to
	// move instead of copy while still keeping the original block
	// intact on failure.
	MoveOK bool

	// NoCopy marks the element type as not duplicable. Copy-based
	// operations (Insert, PushBack, Clone, CopyFrom) panic for such
	// types; relocation always moves.
	NoCopy bool
}

// validate panics on descriptor combinations that have no meaning.
func (f *Funcs[T]) validate() {
	if f.NoCopy && f.Copy != nil {
		panic("vector: Copy hook set together with NoCopy")
	}
}

// trivial reports whether every lifecycle step is plain assignment,
// enabling bulk copy and clear fast paths.
func (f *Funcs[T]) trivial() bool {
	return f.New == nil && f.Copy == nil && f.Move == nil && f.Drop == nil
}

// relocateByMove decides how elements travel into a replacement block:
// move when moving is guaranteed not to fail or when copying is
// unavailable, copy otherwise. Copying keeps the original block intact
// until every duplicate exists, which is what makes a failed relocation
// fully reversible.
func (f *Funcs[T]) relocateByMove() bool {
	return f.Move == nil || f.MoveOK || f.NoCopy
}

// construct produces a default element value.
func (f *Funcs[T]) construct() (T, error) {
	if f.New == nil {
		var zero T
		return zero, nil
	}
	return f.New()
}

// copyOf duplicates *src. Panics for NoCopy element types.
func (f *Funcs[T]) copyOf(src *T) (T, error) {
	if f.NoCopy {
		panic("vector: element type is not copyable")
	}
	if f.Copy == nil {
		return *src, nil
	}
	return f.Copy(src)
}

// moveOf transfers *src's value. With no Move hook the source is left
// unchanged, matching plain value semantics.
func (f *Funcs[T]) moveOf(src *T) (T, error) {
	if f.Move == nil {
		return *src, nil
	}
	return f.Move(src)
}

// dispose runs Drop on *x and zeroes the slot so stale interior pointers
// do not keep dead values reachable.
func (f *Funcs[T]) dispose(x *T) {
	if f.Drop != nil {
		f.Drop(x)
	}
	var zero T
	*x = zero
}
