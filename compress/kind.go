package compress

// Kind identifies a compression stream format.
type Kind uint8

const (
	KindNone   Kind = 0x1 // KindNone applies no compression.
	KindGzip   Kind = 0x2 // KindGzip wraps data in a gzip/DEFLATE stream.
	KindBzip2  Kind = 0x3 // KindBzip2 wraps data in a bzip2 stream.
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindGzip:
		return "Gzip"
	case KindBzip2:
		return "Bzip2"
	default:
		return "Unknown"
	}
}
