package hashtbl

import "github.com/RoaringBitmap/roaring/v2"

type Stats struct {
	Entries  int
	Buckets  int
	Longest  int
	Replaced uint64
	Occupied *roaring.Bitmap
}

func (s Stats) Load() float64 {
	if s.Buckets == 0 {
		return 0
	}
	return float64(s.Entries) / float64(s.Buckets)
}

func (t *T) Stats() Stats {
	s := Stats{
		Entries:  t.eles,
		Buckets:  len(t.buckets),
		Replaced: t.replaced,
		Occupied: roaring.New(),
	}

	for i := range t.buckets {
		n := t.buckets[i].n
		if n == 0 {
			continue
		}
		s.Occupied.Add(uint32(i))
		s.Longest = max(s.Longest, n)
	}

	return s
}
