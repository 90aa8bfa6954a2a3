package obstack

import (
	"sync"
	"unsafe"
)

// SafeArena wraps an [Arena] with a mutex, trading some throughput for
// safety when the arena is shared across goroutines — for example a
// per-request arena reused by a worker pool, or a long-lived arena backing
// a shared object cache. The zero value is not usable; construct one with
// [NewSafe] or [NewSafeFromBuffer].
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafe constructs a mutex-guarded Arena; arguments are as for [New].
func NewSafe(capacity int, raw RawAllocator) (*SafeArena, error) {
	a, err := New(capacity, raw)
	if err != nil {
		return nil, err
	}
	return &SafeArena{a: a}, nil
}

// NewSafeFromBuffer constructs a mutex-guarded Arena; arguments are as for
// [NewFromBuffer].
func NewSafeFromBuffer(buf []byte, raw RawAllocator) (*SafeArena, error) {
	a, err := NewFromBuffer(buf, raw)
	if err != nil {
		return nil, err
	}
	return &SafeArena{a: a}, nil
}

// SafeAlloc is the SafeArena counterpart of [Alloc].
func SafeAlloc[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocValue is the SafeArena counterpart of [AllocValue].
func SafeAllocValue[T any](s *SafeArena, v T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocValue[T](s.a, v)
}

// SafeAllocArray is the SafeArena counterpart of [AllocArray].
func SafeAllocArray[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocArray[T](s.a, n)
}

// Dealloc guards [Arena.Dealloc] with the arena's mutex.
func (s *SafeArena) Dealloc(p unsafe.Pointer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Dealloc(p)
}

// DeallocAll guards [Arena.DeallocAll] with the arena's mutex.
func (s *SafeArena) DeallocAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.DeallocAll()
}

// DeallocAllChecked guards [Arena.DeallocAllChecked] with the arena's mutex.
func (s *SafeArena) DeallocAllChecked() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.DeallocAllChecked()
}

// IsTop guards [Arena.IsTop] with the arena's mutex.
func (s *SafeArena) IsTop(p unsafe.Pointer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.IsTop(p)
}

// IsValid guards [Arena.IsValid] with the arena's mutex.
func (s *SafeArena) IsValid(p unsafe.Pointer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.IsValid(p)
}

// Size guards [Arena.Size] with the arena's mutex.
func (s *SafeArena) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Size()
}

// Capacity guards [Arena.Capacity] with the arena's mutex.
func (s *SafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Metrics guards [Arena.Metrics] with the arena's mutex.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}

// Release guards [Arena.Release] with the arena's mutex.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// Close guards [Arena.Close] with the arena's mutex.
func (s *SafeArena) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Close()
}
