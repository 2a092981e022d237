package rhmap

// nextPowerOf2 rounds i up to the next power of two. nextPowerOf2(0) is 0.
//
// see: https://stackoverflow.com/questions/466204/rounding-up-to-next-power-of-2
func nextPowerOf2(i uint64) uint64 {
	i--
	i |= i >> 1
	i |= i >> 2
	i |= i >> 4
	i |= i >> 8
	i |= i >> 16
	i |= i >> 32
	i++
	return i
}
