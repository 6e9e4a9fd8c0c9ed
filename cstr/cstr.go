// Package cstr stores text in a hashtbl.T the way C strings are stored:
// keys and values carry their terminating NUL byte.
package cstr

import (
	"bytes"

	"github.com/histdb/bytetbl/hashtbl"
)

// Key returns the bytes stored in the table for the text s, including the
// terminating NUL.
func Key(s string) []byte {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return buf
}

func Set(t *hashtbl.T, key, value string) error {
	return t.Set(Key(key), Key(value))
}

// Get returns the text stored under key, up to its first NUL byte, or
// placeholder when key is not present.
func Get(t *hashtbl.T, key, placeholder string) string {
	v, ok := t.Get(Key(key))
	if !ok {
		return placeholder
	}
	if i := bytes.IndexByte(v, 0); i >= 0 {
		v = v[:i]
	}
	return string(v)
}
