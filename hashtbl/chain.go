package hashtbl

import (
	"github.com/zeebo/errs/v2"

	"github.com/histdb/bytetbl/arena"
	"github.com/histdb/bytetbl/sizeof"
)

type entry struct {
	digest uint64
	value  []byte
	next   arena.P[entry]
}

type nodes = arena.T[entry]

// chain is the sentinel of a bucket. It holds no entry itself; head links
// to the first entry, and a nil head is an empty chain.
type chain struct {
	head arena.P[entry]
	n    int
}

// find walks to the link that either names the entry with digest d or is
// the nil link at the tail of the chain.
func (c *chain) find(ns *nodes, d uint64) *arena.P[entry] {
	link := &c.head
	for !link.Nil() {
		e := ns.Get(*link)
		if e.digest == d {
			break
		}
		link = &e.next
	}
	return link
}

func (c *chain) insertOrReplace(ns *nodes, a Allocator, d uint64, v []byte) (replaced bool, err error) {
	link := c.find(ns, d)
	if !link.Nil() {
		e := ns.Get(*link)
		a.Release(e.value)
		e.value = dup(a, v)
		return true, nil
	}

	p, ok := ns.New()
	if !ok {
		return false, errs.Errorf("%w: no node space after %d nodes", ErrInsertion, ns.Allocated())
	}

	*ns.Get(p) = entry{digest: d, value: dup(a, v)}
	*link = p
	c.n++
	return false, nil
}

func (c *chain) lookup(ns *nodes, d uint64) ([]byte, bool) {
	link := c.find(ns, d)
	if link.Nil() {
		return nil, false
	}
	v := ns.Get(*link).value
	return v[:len(v):len(v)], true
}

func (c *chain) destroy(ns *nodes, a Allocator) (released int) {
	for p := c.head; !p.Nil(); released++ {
		e := ns.Get(p)
		next := e.next
		a.Release(e.value)
		ns.Free(p)
		p = next
	}
	c.head = arena.P[entry]{}
	c.n = 0
	return released
}

func (c *chain) size(ns *nodes) (n uint64) {
	for p := c.head; !p.Nil(); {
		e := ns.Get(p)
		n += sizeof.Bytes(e.value)
		p = e.next
	}
	return n
}
