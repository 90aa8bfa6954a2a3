package obstack

import (
	"reflect"
	"unsafe"
)

// Destroyer is implemented by payload types that need cleanup beyond the
// garbage collector's reach (closing an embedded file descriptor, releasing
// a C resource behind cgo, etc). When a type allocated via [Alloc] or
// [AllocValue] implements Destroyer on its pointer type, the arena calls
// ArenaDestroy exactly once, either when the object is popped off the top
// of the stack or when it is explicitly destructed via [Arena.Dealloc]
// while interior to the stack.
//
// Types that do not implement Destroyer are treated the way the source
// design treats POD types: freeing them never invokes anything beyond the
// arena's own bookkeeping.
type Destroyer interface {
	ArenaDestroy()
}

// dtorEntry is one row of an arena's destructor registry: the closure to
// invoke on a payload pointer, plus the reflect.Type it was registered for
// (kept for diagnostics; not consulted on the hot path).
type dtorEntry struct {
	fn  func(unsafe.Pointer)
	typ reflect.Type
}

func noopDtor(unsafe.Pointer) {}

// newDtorTable returns the two reserved entries every arena starts with:
// index 0 is the free-marker (a chunk destructed-and-not-yet-reclaimed),
// index 1 is the array-of-primitives marker used by AllocArray.
func newDtorTable() []dtorEntry {
	return []dtorEntry{
		freeMarkerIndex:        {fn: noopDtor, typ: nil},
		arrayOfPrimitivesIndex: {fn: noopDtor, typ: nil},
	}
}

// registerDtor returns the obfuscated destructor handle for T, registering
// a new closure in a's destructor table the first time T is seen and
// reusing the cached index on every subsequent allocation of the same type.
func registerDtor[T any](a *Arena) uintptr {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if idx, ok := a.dtorIndex[t]; ok {
		return xorIndex(idx)
	}

	idx := uintptr(len(a.dtors))
	var fn func(unsafe.Pointer)
	if _, ok := any((*T)(nil)).(Destroyer); ok {
		fn = func(p unsafe.Pointer) {
			(any)((*T)(p)).(Destroyer).ArenaDestroy()
		}
	} else {
		fn = noopDtor
	}

	a.dtors = append(a.dtors, dtorEntry{fn: fn, typ: t})
	a.dtorIndex[t] = idx
	return xorIndex(idx)
}
