package stego

// EmbedBit returns the value nearest to intensity whose parity is bit:
// odd for 1, even for 0. The result never differs by more than one.
func EmbedBit(intensity uint8, bit int) uint8 {
	odd := intensity&1 == 1
	switch {
	case bit == 1 && !odd:
		// even values top out at 254, so this cannot overflow
		return intensity + 1
	case bit == 0 && odd:
		return intensity - 1
	}
	return intensity
}

// ReadBit observes the bit EmbedBit left behind.
func ReadBit(intensity uint8) int {
	return int(intensity & 1)
}
