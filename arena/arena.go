package arena

import (
	"math"
	"unsafe"
)

const (
	lBatch = 1024
	lAlloc = 8

	ptrSize = unsafe.Sizeof(unsafe.Pointer(nil))
)

// T hands out stable pointers to values addressed by 32-bit handles. Values
// live in fixed batches that are never moved, so a pointer from Get stays
// valid until Reset. The zero handle is never allocated and can be used as
// a nil link.
type T[V any] struct {
	_ [0]func() // no equality

	s    []*[lBatch]V
	p    uint32 // last handle issued
	live uint32
	lim  uint32
}

func (t *T[V]) Size() uint64 {
	return 0 +
		/* buf  */ uint64(len(t.s))*lBatch*uint64(unsafe.Sizeof(*new(V))) +
		/* s    */ 24 + uint64(cap(t.s))*uint64(ptrSize) +
		/* p    */ 4 +
		/* live */ 4 +
		/* lim  */ 4 +
		0
}

func (t *T[V]) Allocated() uint32 { return t.p }
func (t *T[V]) Live() uint32      { return t.live }

type tag[V any] struct{}

type P[V any] struct {
	_ tag[V]
	v uint32
}

func (p P[V]) Nil() bool { return p.v == 0 }

// SetLimit caps the number of handles New will issue. Zero means no cap
// beyond the 32-bit handle space.
func (t *T[V]) SetLimit(n uint32) { t.lim = n }

func (t *T[V]) limit() uint32 {
	if t.lim == 0 {
		return math.MaxUint32
	}
	return t.lim
}

func (t *T[V]) Get(p P[V]) *V {
	return &t.s[p.v/lBatch][p.v%lBatch]
}

// New returns a handle to a zeroed value. It returns false once the handle
// space is exhausted.
func (t *T[V]) New() (p P[V], ok bool) {
	if t.p >= t.limit() {
		return p, false
	}
	t.p++
	p.v = t.p
	if p.v/lBatch >= uint32(len(t.s)) {
		t.grow()
	}
	t.live++
	return p, true
}

func (t *T[V]) grow() {
	if len(t.s) == cap(t.s) {
		s := make([]*[lBatch]V, len(t.s), max(lAlloc, 2*cap(t.s)))
		copy(s, t.s)
		t.s = s
	}
	t.s = append(t.s, new([lBatch]V))
}

// Free zeroes the value behind p. Handles are not reused; the storage is
// returned by Reset.
func (t *T[V]) Free(p P[V]) {
	*t.Get(p) = *new(V)
	t.live--
}

func (t *T[V]) Reset() {
	clear(t.s)
	t.s = nil
	t.p = 0
	t.live = 0
}
