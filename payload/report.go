package payload

import "github.com/nrrdgo/nrrd/integrity"

// ReadReport carries optional bookkeeping produced while reading a
// detached payload: one checksum per contributing sibling file, in read
// order. Left nil unless the caller opted into checksum reporting.
type ReadReport struct {
	FileChecksums []integrity.FileChecksum
}
