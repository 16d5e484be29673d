package workload

// Buffer is the pooled element of a workload run. Serial identifies the
// instance for its whole life; Data keeps its capacity across reuses because
// the pool never resets it.
type Buffer struct {
	Serial int
	Data   []byte
	Uses   int
}

// fill overwrites Data with size bytes derived from round and returns the
// number of bytes written.
func (b *Buffer) fill(round, size int) int {
	b.Uses++
	b.Data = b.Data[:0]
	for i := 0; i < size; i++ {
		b.Data = append(b.Data, byte(round+i))
	}
	return size
}

// Close drops the buffer's storage.
func (b *Buffer) Close() error {
	b.Data = nil
	return nil
}
