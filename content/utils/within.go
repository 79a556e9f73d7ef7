package utils

// Within reports whether lo <= v <= hi.
func Within(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
