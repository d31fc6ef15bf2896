// Package vector implements a generic growable array built on top of an
// explicitly managed storage block.
//
// # Overview
//
// The package separates "memory allocated" from "element live". A
// RawBuffer owns a fixed block of slots and nothing else; a Vector owns
// one RawBuffer plus the count of live elements and issues every
// construct, copy, move, and drop itself. This split is what makes the
// failure behavior precise: a mid-operation error always destroys
// exactly the elements the operation produced. This is particularly
// useful for:
//
//   - Element types that own resources and need deterministic cleanup
//   - Code that must control exactly when (re)allocation happens
//   - Failure-injection testing of container-like data structures
//   - Building higher-level containers with defined error guarantees
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release() // Clean up when done
//
//	// Append and insert
//	_ = v.PushBack(1)
//	_ = v.PushBack(2)
//	_ = v.Insert(1, 10) // {1, 10, 2}
//
//	// Random access and traversal
//	*v.At(0) = 7
//	for _, x := range v.Slice() {
//		fmt.Println(x)
//	}
//
//	// Capacity control
//	_ = v.Reserve(100)
//	_ = v.Resize(3)
//
// # Element Lifecycle
//
// Types that own resources describe their lifecycle with a Funcs value:
//
//	v := vector.New[*os.File](vector.Funcs[*os.File]{
//		Drop: func(f **os.File) {
//			if *f != nil {
//				(*f).Close()
//			}
//		},
//		MoveOK: true,
//	})
//
// All hooks are optional. Relocation during growth moves elements only
// when the move is declared non-failing (MoveOK) or copying is
// unavailable (NoCopy); otherwise it copies, so a failed relocation can
// leave the original elements untouched.
//
// # Failure Guarantees
//
// Reserve, growth-path Insert/Emplace, Make, Clone, and the reallocating
// path of CopyFrom either complete or leave the vector exactly as it
// was. The in-place paths (overwriting CopyFrom, below-capacity middle
// insert, Erase) keep the vector valid on failure but may leave the
// affected range partially updated. Out-of-range positions, popping an
// empty vector, and inconsistent Funcs are contract violations and
// panic rather than returning an error.
//
// # Thread Safety
//
// Vector and RawBuffer are not goroutine-safe. Concurrent mutation of
// one instance requires external locking; independent instances need no
// coordination.
//
// # Performance Characteristics
//
//   - PushBack: O(1) amortized, capacity doubling from 1 (0→1→2→4→…)
//   - Insert/Erase at position i: O(Len()-i) moves
//   - Reserve/Resize: O(Len()) relocation when growing
//   - Clear: O(Len()); Release: O(Len()) plus dropping the block
//   - n appends perform O(log n) reallocations
//
// # Important Notes
//
//   - Pointers from At and views from Slice stay memory-safe but detach
//     from the vector after any reallocating or shifting operation
//   - Dead slots are kept zeroed so dropped values become collectable
//   - A capacity whose byte size cannot be represented fails with
//     ErrTooLarge; actual memory exhaustion panics
//
// # Metrics and Monitoring
//
// The vector tracks its own storage behavior:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization * 100)
//	fmt.Printf("Live elements: %d of %d slots\n", m.Len, m.Cap)
//	fmt.Printf("Reallocations: %d\n", m.Reallocs)
package vector
