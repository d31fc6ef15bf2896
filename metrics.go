package vector

// Utilization returns the ratio of live elements to allocated slots
// (0.0 to 1.0). Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.buf.Cap()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Reallocs returns how many times the vector has allocated a
// replacement block since creation. Under the doubling growth policy
// this stays logarithmic in the number of appended elements.
func (v *Vector[T]) Reallocs() int {
	return v.reallocs
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:         v.Len(),
		Cap:         v.Cap(),
		Reallocs:    v.Reallocs(),
		Utilization: v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len         int     // Live elements
	Cap         int     // Allocated element slots
	Reallocs    int     // Replacement blocks allocated so far
	Utilization float64 // Ratio of live elements to slots (0.0-1.0)
}
