package obstack_test

import (
	"fmt"
	"unsafe"

	"github.com/cleeus/obstack"
)

// Example demonstrates basic allocation and reverse-order teardown.
func Example() {
	a, err := obstack.New(4096, nil)
	if err != nil {
		panic(err)
	}
	defer a.Release()

	n := obstack.Alloc[int](a)
	*n = 42
	fmt.Printf("value: %d\n", *n)

	s := obstack.AllocArray[int](a, 3)
	for i := range s {
		s[i] = i * i
	}
	fmt.Printf("squares: %v\n", s)

	fmt.Println("size grew:", a.Size() > 0)
	a.DeallocAll()
	fmt.Println("size after DeallocAll:", a.Size())

	// Output:
	// value: 42
	// squares: [0 1 4]
	// size grew: true
	// size after DeallocAll: 0
}

// ExampleArena_Dealloc shows that freeing the top allocation reclaims its
// memory immediately, while freeing an interior allocation only defers
// reclamation until the objects above it are also freed.
func ExampleArena_Dealloc() {
	a, err := obstack.New(4096, nil)
	if err != nil {
		panic(err)
	}
	defer a.Release()

	first := obstack.Alloc[int64](a)
	second := obstack.Alloc[int64](a)
	sizeWithBoth := a.Size()

	a.Dealloc(unsafe.Pointer(first)) // interior: memory not reclaimed yet
	fmt.Println("size unchanged after interior dealloc:", a.Size() == sizeWithBoth)

	a.Dealloc(unsafe.Pointer(second)) // pops second, then sweeps first's tombstone
	fmt.Println("size after popping the top:", a.Size())

	// Output:
	// size unchanged after interior dealloc: true
	// size after popping the top: 0
}
