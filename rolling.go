// rolling.go - tiled bulk copy, the sample-generation hot path

package main

// roll produces a length-n sequence whose ith element is
// src[(offset+i) mod len(src)], built from a head partial copy, as many
// full-length bulk copies of src as fit, and a tail partial copy. src must
// be non-empty.
func roll[T any](src []T, offset, n int) []T {
	if len(src) == 0 {
		panic("roll: src must be non-empty")
	}

	out := make([]T, n)
	if n == 0 {
		return out
	}

	rollOffset := offset % len(src)
	written := 0

	if rollOffset != 0 {
		head := copy(out, src[rollOffset:])
		written += head
	}

	for written+len(src) <= n {
		written += copy(out[written:], src)
	}

	if written < n {
		copy(out[written:], src)
	}

	return out
}
