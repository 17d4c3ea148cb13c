package header

import (
	"fmt"
	"io"
	"sort"

	"github.com/nrrdgo/nrrd/errs"
	"github.com/nrrdgo/nrrd/field"
)

// canonicalOrder pins the order standard fields are written in, matching
// the order a conforming writer has always used. Space comes before space
// dimension, per the convention every reader in the wild already expects.
var canonicalOrder = []string{
	"type",
	"dimension",
	"space",
	"space dimension",
	"sizes",
	"space directions",
	"kinds",
	"endian",
	"encoding",
	"min",
	"max",
	"old min",
	"old max",
	"content",
	"line skip",
	"byte skip",
	"spacings",
	"thicknesses",
	"axis mins",
	"axis maxs",
	"centerings",
	"labels",
	"units",
	"sample units",
	"space units",
	"space origin",
	"measurement frame",
	"block size",
	"data file",
}

var canonicalRank = func() map[string]int {
	m := make(map[string]int, len(canonicalOrder))
	for i, name := range canonicalOrder {
		m[name] = i
	}
	return m
}()

// Write serializes the header's magic line, fields in canonical order
// (standard fields first, any field absent from the canonical list —
// i.e. a custom key/value pair — written last in the order it was added),
// and the terminating blank line.
func Write(w io.Writer, h *Header) error {
	if _, err := fmt.Fprintf(w, "%s%04d\n", magicPrefix, h.Version); err != nil {
		return errs.New(errs.KindIOError, nil, err.Error())
	}

	ordered := make([]Entry, len(h.Entries))
	copy(ordered, h.Entries)

	sortEntriesByCanonicalOrder(ordered)

	for _, e := range ordered {
		text, err := field.Format(e.Value)
		if err != nil {
			return err
		}

		delim := ": "
		if e.KeyVal {
			delim = ":="
		}

		if _, err := fmt.Fprintf(w, "%s%s%s\n", e.Name, delim, text); err != nil {
			return errs.New(errs.KindIOError, nil, err.Error())
		}
	}

	if _, err := fmt.Fprint(w, "\n"); err != nil {
		return errs.New(errs.KindIOError, nil, err.Error())
	}

	return nil
}

// sortEntriesByCanonicalOrder stable-sorts entries so standard fields come
// first in canonicalOrder's sequence, followed by custom key/value pairs
// in their original relative order.
func sortEntriesByCanonicalOrder(entries []Entry) {
	rank := func(name string) int {
		if r, ok := canonicalRank[name]; ok {
			return r
		}
		return len(canonicalOrder)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return rank(entries[i].Name) < rank(entries[j].Name)
	})
}
