package endian

// SwapInPlace byte-swaps every elemSize-wide element of data in place.
//
// elemSize must be 1, 2, 4, or 8; elemSize 1 is a no-op since a single byte
// has no internal order. len(data) must be a multiple of elemSize, which the
// payload codec guarantees by construction (it only ever calls this with
// exactly element_count*elemSize bytes).
func SwapInPlace(data []byte, elemSize int) {
	switch elemSize {
	case 1:
		return
	case 2:
		for i := 0; i+1 < len(data); i += 2 {
			data[i], data[i+1] = data[i+1], data[i]
		}
	case 4:
		for i := 0; i+3 < len(data); i += 4 {
			data[i], data[i+1], data[i+2], data[i+3] = data[i+3], data[i+2], data[i+1], data[i]
		}
	case 8:
		for i := 0; i+7 < len(data); i += 8 {
			data[i], data[i+1], data[i+2], data[i+3], data[i+4], data[i+5], data[i+6], data[i+7] =
				data[i+7], data[i+6], data[i+5], data[i+4], data[i+3], data[i+2], data[i+1], data[i]
		}
	default:
		panic("endian: unsupported element size for SwapInPlace")
	}
}
