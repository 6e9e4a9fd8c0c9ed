package testhelp

import (
	"strconv"

	"github.com/zeebo/mwc"

	"github.com/histdb/bytetbl/digest"
)

var (
	keyRng = mwc.Rand()
	valRng = mwc.Rand()
)

func Key(n int) []byte {
	v := make([]byte, n)
	for i := range v {
		v[i] = byte(keyRng.Uint64())
	}
	return v
}

func Value(n int) []byte {
	v := make([]byte, n)
	for i := range v {
		v[i] = byte(valRng.Uint64())
	}
	return v
}

// Colliding returns n keys with distinct digests under fn that all index
// to the same bucket of a table with the given capacity.
func Colliding(fn digest.Func, capacity, n int) [][]byte {
	slots := make(map[int][][]byte)
	digests := make(map[uint64]struct{})

	for i := 0; ; i++ {
		key := strconv.AppendInt([]byte("key-"), int64(i), 10)

		d := fn(key)
		if _, ok := digests[d]; ok {
			continue
		}
		digests[d] = struct{}{}

		slot := digest.Index(d, capacity)
		slots[slot] = append(slots[slot], key)
		if len(slots[slot]) == n {
			return slots[slot]
		}
	}
}
