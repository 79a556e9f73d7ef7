package utils

// Wrap steps v by delta within [0, n), wrapping at both ends.
func Wrap(v, delta, n int) int {
	return ((v+delta)%n + n) % n
}
