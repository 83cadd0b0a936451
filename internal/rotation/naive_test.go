package rotation

import "slices"

// rotateAndCompare is the quadratic oracle: rotate a copy of a by one
// position at a time and compare it with b after every step.
func rotateAndCompare[S ~[]E, E comparable](a, b S) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}

	s := slices.Clone(a)
	for range len(s) {
		first := s[0]
		copy(s, s[1:])
		s[len(s)-1] = first

		if slices.Equal(s, b) {
			return true
		}
	}
	return false
}

// naiveOffset is the smallest k with Left(a, k) == b, found by trying every k.
func naiveOffset[S ~[]E, E comparable](a, b S) (int, bool) {
	if len(a) != len(b) {
		return -1, false
	}
	if len(a) == 0 {
		return 0, true
	}
	for k := range len(a) {
		if slices.Equal(Left(a, k), b) {
			return k, true
		}
	}
	return -1, false
}
