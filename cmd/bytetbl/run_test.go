package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/op/go-logging"
	"github.com/zeebo/assert"

	"github.com/histdb/bytetbl/digest"
	"github.com/histdb/bytetbl/cstr"
	"github.com/histdb/bytetbl/hashtbl"
	"github.com/histdb/bytetbl/hexx"
)

func defaultOptions() Options {
	return Options{
		Capacity:    32,
		Hasher:      "mix",
		Placeholder: "(null)",
	}
}

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Run(defaultOptions(), &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, len(lines), 13)
	assert.Equal(t, lines[0], "[a] = aaa")
	assert.Equal(t, lines[3], "[d] = ddd")
	assert.Equal(t, lines[8], "[i] = XXX")
	assert.Equal(t, lines[11], "[l] = l")
	assert.Equal(t, lines[12], "[None?] = (null)")
}

func TestRunPairs(t *testing.T) {
	opts := defaultOptions()
	opts.Hasher = "xxh3"
	opts.Capacity = 4
	opts.Verbose = true
	opts.Args.Pairs = []string{"x=1", "y=2", "x=3", "empty="}

	var buf bytes.Buffer
	assert.NoError(t, Run(opts, &buf))
	assert.Equal(t, buf.String(), "[x] = 3\n[y] = 2\n[empty] = \n")
}

func TestRunVerbose(t *testing.T) {
	mem := logging.NewMemoryBackend(64)
	logging.SetBackend(mem).SetLevel(logging.NOTICE, "")
	t.Cleanup(func() { assert.NoError(t, setupLogging("notice")) })

	opts := defaultOptions()
	opts.Verbose = true
	opts.Args.Pairs = []string{"x=1", "y=2"}

	var buf bytes.Buffer
	assert.NoError(t, Run(opts, &buf))

	var msgs []string
	for n := mem.Head(); n != nil; n = n.Next() {
		msgs = append(msgs, n.Record.Message())
	}
	logged := strings.Join(msgs, "\n")

	d := digest.Sum(cstr.Key("x"))
	assert.That(t, strings.Contains(logged, `set "x" digest=`+hexx.Format64(d)))
	assert.That(t, strings.Contains(logged, `set "y" digest=`))
	assert.That(t, strings.Contains(logged, "entries=2 replaced=0"))
	assert.That(t, !strings.Contains(logged, "created table"))
}

func TestRunGet(t *testing.T) {
	opts := defaultOptions()
	opts.Placeholder = "-"
	opts.Get = []string{"b", "zzz"}

	var buf bytes.Buffer
	assert.NoError(t, Run(opts, &buf))
	assert.Equal(t, buf.String(), "[b] = bbb\n[zzz] = -\n")
}

func TestRunErrors(t *testing.T) {
	opts := defaultOptions()
	opts.Capacity = 0
	err := Run(opts, new(bytes.Buffer))
	assert.That(t, errors.Is(err, hashtbl.ErrCapacity))

	opts = defaultOptions()
	opts.Hasher = "crc"
	err = Run(opts, new(bytes.Buffer))
	assert.That(t, errors.Is(err, digest.ErrUnknownHasher))

	opts = defaultOptions()
	opts.Args.Pairs = []string{"novalue"}
	assert.Error(t, Run(opts, new(bytes.Buffer)))
}

func TestParsePairs(t *testing.T) {
	pairs, err := parsePairs([]string{"a=b=c", "=v"})
	assert.NoError(t, err)
	assert.Equal(t, pairs[0], pair{"a", "b=c"})
	assert.Equal(t, pairs[1], pair{"", "v"})

	assert.DeepEqual(t, queriesFor([]pair{{"a", "1"}, {"b", "2"}, {"a", "3"}}), []string{"a", "b"})
}
