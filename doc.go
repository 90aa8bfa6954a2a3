// Package obstack implements an object-stack arena: a bounded, contiguous
// memory region from which heterogeneously-typed objects are allocated by
// pointer-bumping and deallocated in (approximately) reverse order.
//
// # Overview
//
// An obstack trades the generality of a heap allocator for O(1) allocation
// and deallocation on workloads with bursty, stack-shaped lifetimes:
//
//   - Request-scoped allocations in servers
//   - Parse trees and other short-lived object graphs
//   - Per-frame data in simulation or rendering loops
//
// Unlike a plain bump allocator, an obstack remembers how to destroy every
// object it holds (via a per-arena destructor registry, see [Destroyer]) and
// supports freeing a single object out of allocation order: freeing the
// top-of-stack object reclaims its memory immediately, freeing an interior
// object only runs its destructor and defers reclamation until every object
// allocated after it has also been freed.
//
// # Basic usage
//
//	a, err := obstack.New(64*1024, nil) // nil uses the default heap allocator
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer a.Release()
//
//	n := obstack.Alloc[int](a)
//	*n = 42
//
//	buf := obstack.AllocArray[byte](a, 1024)
//
//	a.Dealloc(unsafe.Pointer(n))
//
// # Thread safety
//
// [Arena] is not safe for concurrent use. [SafeArena] wraps an [Arena] with
// a mutex for callers that need it.
//
// # Fixed capacity
//
// An obstack never grows: its capacity is fixed at construction time.
// Allocation past capacity returns nil rather than reallocating, since a
// reallocation would invalidate every pointer the arena has already handed
// out.
package obstack
