package digest

import (
	"github.com/zeebo/errs/v2"
	"github.com/zeebo/xxh3"
)

var ErrUnknownHasher = errs.Errorf("unknown hasher")

type Func func(key []byte) uint64

const (
	mixTmp = 0x9E3779B97F4A7C15
	mixKey = 0xBF58476D1CE4E5B9
)

// Sum folds every byte of key through tmp, accumulating tmp into the
// digest, and finishes with a single avalanche over the digest. A missing
// first byte (empty key) seeds tmp with zero. Each byte is offset by 0x100
// so runs of zero bytes still move the state.
func Sum(key []byte) uint64 {
	var first uint64
	if len(key) > 0 {
		first = uint64(key[0])
	}

	tmp := first * (uint64(len(key)) << 1)
	d := uint64(0)

	for _, c := range key {
		tmp ^= uint64(c) + 0x100
		tmp += tmp << 10
		tmp ^= tmp >> 6
		tmp *= mixTmp
		tmp ^= tmp >> 29
		d += tmp
	}

	d ^= tmp >> 31
	d *= mixKey
	d ^= d >> 27
	d += d << 15
	d ^= d >> 33

	return d
}

func XXH3(key []byte) uint64 { return xxh3.Hash(key) }

func Index(d uint64, capacity int) int {
	if capacity <= 0 {
		panic("digest: index with non-positive capacity")
	}
	return int(d % uint64(capacity))
}

func ByName(name string) (Func, error) {
	switch name {
	case "", "mix":
		return Sum, nil
	case "xxh3":
		return XXH3, nil
	default:
		return nil, errs.Errorf("%w: %q", ErrUnknownHasher, name)
	}
}
