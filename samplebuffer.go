// samplebuffer.go - zero-copy batch drain of a pre-filled sample vector

package main

// SampleBuffer owns exactly one underlying slice at a time and tracks how
// far it has been drained. overwrite atomically replaces ownership of the
// underlying slice.
type SampleBuffer[T any] struct {
	underlying []T
	index      int
}

// NewSampleBuffer adopts source with index 0.
func NewSampleBuffer[T any](source []T) *SampleBuffer[T] {
	return &SampleBuffer[T]{underlying: source}
}

// ElementsRemaining returns how many elements have not yet been consumed.
func (b *SampleBuffer[T]) ElementsRemaining() int {
	return len(b.underlying) - b.index
}

// Overwrite replaces the underlying slice and resets the read index.
func (b *SampleBuffer[T]) Overwrite(newData []T) {
	b.underlying = newData
	b.index = 0
}

// ConsumeInto copies the next len(target) elements into target and advances
// the read index by that amount. len(target) must be <= ElementsRemaining().
func (b *SampleBuffer[T]) ConsumeInto(target []T) {
	if len(target) > b.ElementsRemaining() {
		panic("sample buffer: consume exceeds elements remaining")
	}
	copy(target, b.underlying[b.index:b.index+len(target)])
	b.index += len(target)
}
