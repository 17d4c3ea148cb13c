package header

import "github.com/nrrdgo/nrrd/field"

// Entry is one parsed header field, in the order it was encountered (for a
// header read off the wire) or appended (for a header being built for
// writing).
type Entry struct {
	Name    string // canonical field name
	KeyVal  bool   // true if this was a custom "key:=value" pair rather than a standard field
	Value   field.Value
}

// Header is the ordered collection of fields between the magic line and
// the blank-line terminator.
type Header struct {
	Version int
	Entries []Entry
}

// New creates an empty Header for the given format version.
func New(version int) *Header {
	return &Header{Version: version}
}

// Get returns the value of a field by name (any accepted spelling), and
// whether it was present.
func (h *Header) Get(name string) (field.Value, bool) {
	canon := field.CanonicalName(name)
	for _, e := range h.Entries {
		if e.Name == canon {
			return e.Value, true
		}
	}
	return field.Value{}, false
}

// Has reports whether a field is present.
func (h *Header) Has(name string) bool {
	_, ok := h.Get(name)
	return ok
}

// Set adds or replaces a standard field's value.
func (h *Header) Set(name string, v field.Value) {
	h.set(name, v, false)
}

// SetKeyValue adds or replaces a custom "key:=value" pair.
func (h *Header) SetKeyValue(name string, v field.Value) {
	h.set(name, v, true)
}

func (h *Header) set(name string, v field.Value, keyVal bool) {
	canon := field.CanonicalName(name)
	for i, e := range h.Entries {
		if e.Name == canon {
			h.Entries[i].Value = v
			h.Entries[i].KeyVal = keyVal
			return
		}
	}
	h.Entries = append(h.Entries, Entry{Name: canon, Value: v, KeyVal: keyVal})
}
