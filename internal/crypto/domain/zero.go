package domain

// Zero overwrites a byte slice with zeros to clear sensitive data from memory.
// A nil slice is a no-op.
func Zero(b []byte) {
	clear(b)
}
