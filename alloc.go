package obstack

import "unsafe"

// Alloc allocates a zero-valued T on the arena and returns a pointer to it,
// or nil if the arena does not have enough remaining capacity. If T
// implements [Destroyer], ArenaDestroy runs when the object is popped or
// explicitly deallocated. Capacity exhaustion never panics and never
// mutates the arena's state.
func Alloc[T any](a *Arena) *T {
	a.panicIfReleased()
	var zero T
	size := unsafe.Sizeof(zero)
	off, ok := a.allocate(unsafe.Alignof(zero), size, func() uintptr { return registerDtor[T](a) })
	if !ok {
		return nil
	}
	// The backing buffer may hold stale bytes from a prior Dealloc/DeallocAll
	// cycle at this offset; clear them before handing the pointer out.
	clear(unsafe.Slice((*byte)(a.ptrAt(off)), size))
	return (*T)(a.ptrAt(off))
}

// AllocValue allocates a copy of v on the arena and returns a pointer to
// the copy, playing the role a copy-constructing alloc<T>(v) plays in the
// source design, or nil on capacity exhaustion. Its destructor semantics
// match [Alloc].
func AllocValue[T any](a *Arena, v T) *T {
	p := Alloc[T](a)
	if p == nil {
		return nil
	}
	*p = v
	return p
}

// AllocArray allocates a contiguous slice of n T on the arena, or nil on
// capacity exhaustion. Unlike [Alloc], the elements are not zeroed: they
// hold whatever bytes the buffer held at that offset, which may be stale
// bytes from an earlier, reclaimed allocation. The returned slice is backed by arena
// memory and must not outlive it. A single header covers the whole array,
// tagged with the reserved array-of-primitives destructor marker: like the
// source design's alloc_array, AllocArray is for trivially-destructible
// payloads and never invokes ArenaDestroy on individual elements. n == 0 is
// legal and yields a valid, non-nil, zero-length slice backed by a real
// (header-only) allocation.
func AllocArray[T any](a *Arena, n int) []T {
	a.panicIfReleased()
	if n < 0 {
		panic("obstack: AllocArray: negative length")
	}
	var zero T
	if _, ok := any(&zero).(Destroyer); ok {
		panic("obstack: AllocArray: element type must not implement Destroyer, use Alloc per element instead")
	}
	elemSize := unsafe.Sizeof(zero)
	off, ok := a.allocate(unsafe.Alignof(zero), elemSize*uintptr(n), func() uintptr { return arrayMarkerXor })
	if !ok {
		return nil
	}
	return unsafe.Slice((*T)(a.ptrAt(off)), n)
}
