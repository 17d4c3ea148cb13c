// Package integrity provides the optional checksum bookkeeping used when
// reading a payload split across multiple detached data files: each file's
// contribution can be hashed independently so a caller auditing a
// multi-file dataset can tell which sibling, if any, was corrupted or
// truncated without re-reading the whole volume.
package integrity

import "github.com/cespare/xxhash/v2"

// Sum64 returns the xxhash64 digest of data. Not a cryptographic checksum;
// it exists to detect accidental corruption or truncation, not tampering.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// FileChecksum records the digest computed for one sibling data file that
// contributed to a detached payload.
type FileChecksum struct {
	Path   string
	Bytes  int64
	Digest uint64
}

// Accumulator incrementally hashes a payload assembled from one or more
// sibling files, recording a FileChecksum each time a file boundary is
// reached via Next.
type Accumulator struct {
	current *xxhash.Digest
	path    string
	n       int64
	sums    []FileChecksum
}

// NewAccumulator creates an Accumulator. Begin must be called before the
// first Write.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Begin starts tracking a new sibling file's contribution.
func (a *Accumulator) Begin(path string) {
	a.current = xxhash.New()
	a.path = path
	a.n = 0
}

// Write feeds bytes from the file started by the most recent Begin into
// its running digest.
func (a *Accumulator) Write(p []byte) {
	a.current.Write(p) //nolint:errcheck // xxhash.Digest.Write never errors
	a.n += int64(len(p))
}

// End finalizes the digest for the file started by the most recent Begin
// and appends it to the accumulated results.
func (a *Accumulator) End() {
	if a.current == nil {
		return
	}
	a.sums = append(a.sums, FileChecksum{Path: a.path, Bytes: a.n, Digest: a.current.Sum64()})
	a.current = nil
}

// Checksums returns one FileChecksum per sibling file tracked so far.
func (a *Accumulator) Checksums() []FileChecksum {
	return a.sums
}
