package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/zeebo/errs/v2"

	"github.com/histdb/bytetbl/cstr"
	"github.com/histdb/bytetbl/digest"
	"github.com/histdb/bytetbl/hashtbl"
	"github.com/histdb/bytetbl/hexx"
)

// demoPairs is the data set used when no pairs are given on the command
// line. The second "i" replaces the first.
var demoPairs = []string{
	"a=aaa", "b=bbb", "c=ccc", "d=ddd",
	"e=e", "f=f", "g=g", "h=h",
	"i=i", "j=j", "k=k", "l=l",
	"i=XXX",
}

var demoQueries = []string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "none",
}

// demoLabels renames queries in the printed output of the demo.
var demoLabels = map[string]string{
	"none": "None?",
}

type pair struct{ key, value string }

func parsePairs(args []string) ([]pair, error) {
	pairs := make([]pair, 0, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, errs.Errorf("invalid pair %q: expected key=value", arg)
		}
		pairs = append(pairs, pair{key, value})
	}
	return pairs, nil
}

func queriesFor(pairs []pair) []string {
	seen := make(map[string]struct{}, len(pairs))
	keys := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if _, ok := seen[p.key]; ok {
			continue
		}
		seen[p.key] = struct{}{}
		keys = append(keys, p.key)
	}
	return keys
}

func Run(opts Options, w io.Writer) (err error) {
	fn, err := digest.ByName(opts.Hasher)
	if err != nil {
		return err
	}

	args, queries := opts.Args.Pairs, opts.Get
	var labels map[string]string
	if len(args) == 0 {
		args = demoPairs
		if len(queries) == 0 {
			queries, labels = demoQueries, demoLabels
		}
	}

	pairs, err := parsePairs(args)
	if err != nil {
		return err
	}
	if len(queries) == 0 {
		queries = queriesFor(pairs)
	}

	tb, err := hashtbl.New(opts.Capacity, hashtbl.WithHasher(fn))
	if err != nil {
		return err
	}
	defer func() { err = errs.Combine(err, tb.Destroy()) }()

	log.Infof("created table with %d buckets using %s", tb.Capacity(), opts.Hasher)

	for _, p := range pairs {
		if opts.Verbose {
			d := fn(cstr.Key(p.key))
			log.Noticef("set %q digest=%s slot=%d", p.key, hexx.Format64(d), digest.Index(d, tb.Capacity()))
		}
		if err := cstr.Set(tb, p.key, p.value); err != nil {
			return errs.Wrap(err)
		}
	}

	for _, key := range queries {
		label, ok := labels[key]
		if !ok {
			label = key
		}
		if _, err := fmt.Fprintf(w, "[%s] = %s\n", label, cstr.Get(tb, key, opts.Placeholder)); err != nil {
			return errs.Wrap(err)
		}
	}

	if opts.Verbose {
		st := tb.Stats()
		log.Noticef("entries=%d replaced=%d occupied=%d/%d longest=%d load=%.3f",
			st.Entries, st.Replaced, st.Occupied.GetCardinality(), st.Buckets, st.Longest, st.Load())
	}

	return nil
}
