package testhelp

import "unsafe"

// Counting is an allocator that tracks every buffer it hands out so tests
// can check that each one comes back exactly once.
type Counting struct {
	live  map[*byte]int
	freed map[*byte]bool

	Allocs   int
	Releases int
	Doubles  int
	Foreign  int
}

func NewCounting() *Counting {
	return &Counting{
		live:  make(map[*byte]int),
		freed: make(map[*byte]bool),
	}
}

func (c *Counting) Alloc(n int) []byte {
	// one spare byte so even empty buffers have a distinct address
	buf := make([]byte, n, n+1)
	c.live[unsafe.SliceData(buf)] = n
	c.Allocs++
	return buf
}

func (c *Counting) Release(buf []byte) {
	p := unsafe.SliceData(buf)
	if _, ok := c.live[p]; !ok {
		if c.freed[p] {
			c.Doubles++
		} else {
			c.Foreign++
		}
		return
	}
	delete(c.live, p)
	c.freed[p] = true
	c.Releases++
}

func (c *Counting) Outstanding() int { return len(c.live) }

func (c *Counting) OutstandingBytes() (n int) {
	for _, size := range c.live {
		n += size
	}
	return n
}
