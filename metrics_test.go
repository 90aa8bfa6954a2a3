package obstack

import (
	"testing"
	"unsafe"
)

func TestMetricsTracksUsage(t *testing.T) {
	a, err := New(4096, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Release()

	m0 := a.Metrics()
	if m0.SizeInUse != 0 || m0.LiveChunks != 0 {
		t.Fatalf("initial metrics = %+v, want zeroed usage", m0)
	}
	if m0.Capacity != 4096 {
		t.Errorf("Capacity = %d, want 4096", m0.Capacity)
	}

	p := Alloc[int64](a)
	m1 := a.Metrics()
	if m1.SizeInUse <= m0.SizeInUse {
		t.Errorf("SizeInUse did not grow after Alloc: before=%d after=%d", m0.SizeInUse, m1.SizeInUse)
	}
	if m1.LiveChunks != 1 {
		t.Errorf("LiveChunks after one Alloc = %d, want 1", m1.LiveChunks)
	}
	if m1.RegisteredTypes != 1 {
		t.Errorf("RegisteredTypes after allocating one type = %d, want 1", m1.RegisteredTypes)
	}

	a.Dealloc(unsafe.Pointer(p))
	m2 := a.Metrics()
	if m2.SizeInUse != m0.SizeInUse {
		t.Errorf("SizeInUse after popping the only chunk = %d, want %d", m2.SizeInUse, m0.SizeInUse)
	}
}

func TestUtilizationRatio(t *testing.T) {
	m := ArenaMetrics{SizeInUse: 25, Capacity: 100}
	if got := m.Utilization(); got != 0.25 {
		t.Errorf("Utilization() = %v, want 0.25", got)
	}

	empty := ArenaMetrics{}
	if got := empty.Utilization(); got != 0 {
		t.Errorf("Utilization() of zero-capacity metrics = %v, want 0", got)
	}
}
