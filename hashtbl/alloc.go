package hashtbl

// Allocator supplies the buffers that hold stored values. Every buffer the
// table obtains from Alloc is handed back to Release exactly once, when the
// value is replaced or the table is destroyed.
type Allocator interface {
	Alloc(n int) []byte
	Release(buf []byte)
}

type HeapAllocator struct{}

func (HeapAllocator) Alloc(n int) []byte { return make([]byte, n) }
func (HeapAllocator) Release([]byte)     {}

func dup(a Allocator, v []byte) []byte {
	buf := a.Alloc(len(v))
	copy(buf, v)
	return buf[:len(v)]
}
