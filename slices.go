package dfa

// grow extends s to size, filling new slots with fill.
func grow[T any](s []T, size int, fill T) []T {
	if len(s) >= size {
		return s
	}
	add := size - len(s)
	for i := 0; i < add; i++ {
		s = append(s, fill)
	}
	return s
}

// clone returns a copy of s that never aliases it, nil stays nil.
func clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
