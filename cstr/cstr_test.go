package cstr

import (
	"testing"

	"github.com/zeebo/assert"

	"github.com/histdb/bytetbl/hashtbl"
)

func TestStrings(t *testing.T) {
	tb, err := hashtbl.New(32)
	assert.NoError(t, err)
	defer func() { assert.NoError(t, tb.Destroy()) }()

	assert.NoError(t, Set(tb, "a", "aaa"))
	assert.NoError(t, Set(tb, "i", "i"))
	assert.NoError(t, Set(tb, "i", "XXX"))

	assert.Equal(t, Get(tb, "a", "(null)"), "aaa")
	assert.Equal(t, Get(tb, "i", "(null)"), "XXX")
	assert.Equal(t, Get(tb, "none", "(null)"), "(null)")
	assert.Equal(t, Get(tb, "none", ""), "")
}

func TestStringsTerminator(t *testing.T) {
	tb, err := hashtbl.New(8)
	assert.NoError(t, err)

	assert.NoError(t, Set(tb, "k", "v"))

	assert.Equal(t, string(Key("k")), "k\x00")
	assert.Equal(t, len(Key("")), 1)

	raw, ok := tb.Get([]byte("k\x00"))
	assert.That(t, ok)
	assert.Equal(t, string(raw), "v\x00")

	// the terminator is part of the key
	_, ok = tb.Get([]byte("k"))
	assert.That(t, !ok)

	assert.NoError(t, Set(tb, "", ""))
	assert.Equal(t, Get(tb, "", "missing"), "")
}

func TestStringsEmbeddedNul(t *testing.T) {
	tb, err := hashtbl.New(8)
	assert.NoError(t, err)

	assert.NoError(t, Set(tb, "k", "ab\x00cd"))
	assert.Equal(t, Get(tb, "k", ""), "ab")
}
