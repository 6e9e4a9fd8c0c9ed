package hashtbl

import (
	"math"

	"github.com/zeebo/errs/v2"

	"github.com/histdb/bytetbl/digest"
	"github.com/histdb/bytetbl/sizeof"
)

var (
	ErrCapacity  = errs.Errorf("invalid capacity")
	ErrInsertion = errs.Errorf("insertion failed")
	ErrDestroyed = errs.Errorf("table destroyed")
)

// T maps byte keys to byte values using a fixed number of buckets, each
// anchoring a chain of entries. The bucket count never changes. Entries
// are identified by the digest of their key alone, so the key bytes are
// not kept.
//
// T is not safe for concurrent use.
type T struct {
	buckets  []chain
	nodes    nodes
	hash     digest.Func
	alloc    Allocator
	eles     int
	replaced uint64
	dead     bool
}

type Option func(*T)

func WithHasher(fn digest.Func) Option {
	return func(t *T) {
		if fn != nil {
			t.hash = fn
		}
	}
}

func WithAllocator(a Allocator) Option {
	return func(t *T) {
		if a != nil {
			t.alloc = a
		}
	}
}

// WithNodeLimit bounds the number of entries the table will ever create.
// Set returns ErrInsertion once the bound is reached.
func WithNodeLimit(n uint32) Option {
	return func(t *T) { t.nodes.SetLimit(n) }
}

func New(capacity int, opts ...Option) (*T, error) {
	if capacity <= 0 || uint64(capacity) > math.MaxUint32 {
		return nil, errs.Errorf("%w: %d", ErrCapacity, capacity)
	}

	t := &T{
		buckets: make([]chain, capacity),
		hash:    digest.Sum,
		alloc:   HeapAllocator{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

func (t *T) Len() int      { return t.eles }
func (t *T) Capacity() int { return len(t.buckets) }

func (t *T) Size() uint64 {
	n := uint64(0 +
		/* buckets  */ sizeof.Slice(t.buckets) +
		/* nodes    */ t.nodes.Size() +
		/* hash     */ 8 +
		/* alloc    */ 16 +
		/* eles     */ 8 +
		/* replaced */ 8 +
		/* dead     */ 8 +
		0)
	for i := range t.buckets {
		n += t.buckets[i].size(&t.nodes)
	}
	return n
}

func (t *T) locate(key []byte) (*chain, uint64) {
	d := t.hash(key)
	return &t.buckets[digest.Index(d, len(t.buckets))], d
}

// Set stores a copy of value under key. Digest equality implies key
// equality: if another key with the same digest is already present, its
// value is released and replaced.
func (t *T) Set(key, value []byte) error {
	if t.dead {
		return errs.Wrap(ErrDestroyed)
	}

	c, d := t.locate(key)
	replaced, err := c.insertOrReplace(&t.nodes, t.alloc, d, value)
	if err != nil {
		return err
	}

	if replaced {
		t.replaced++
	} else {
		t.eles++
	}
	return nil
}

// Get returns the value stored under key. The returned slice aliases table
// memory and is only valid until the next Set of the same key or Destroy.
func (t *T) Get(key []byte) ([]byte, bool) {
	if t.dead {
		return nil, false
	}

	c, d := t.locate(key)
	return c.lookup(&t.nodes, d)
}

// Destroy releases every value buffer and chain node. The table cannot be
// used afterwards.
func (t *T) Destroy() error {
	if t.dead {
		return errs.Wrap(ErrDestroyed)
	}

	for i := range t.buckets {
		t.buckets[i].destroy(&t.nodes, t.alloc)
	}

	t.nodes.Reset()
	t.buckets = nil
	t.eles = 0
	t.dead = true
	return nil
}
