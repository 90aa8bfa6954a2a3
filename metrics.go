package obstack

// ArenaMetrics is an immutable snapshot of an [Arena]'s bookkeeping state at
// the moment [Arena.Metrics] was called.
type ArenaMetrics struct {
	SizeInUse       int
	Capacity        int
	LiveChunks      int
	RegisteredTypes int
}

// Utilization returns the fraction of Capacity currently in use, in
// [0.0, 1.0]. It returns 0 for a zero-capacity arena rather than dividing
// by zero, though [New] never actually produces one.
func (m ArenaMetrics) Utilization() float64 {
	if m.Capacity == 0 {
		return 0
	}
	return float64(m.SizeInUse) / float64(m.Capacity)
}

// Metrics returns a point-in-time snapshot of the arena's usage, suitable
// for periodic reporting to an external metrics system.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:       a.Size(),
		Capacity:        a.Capacity(),
		LiveChunks:      a.LiveChunks(),
		RegisteredTypes: a.RegisteredTypes(),
	}
}
