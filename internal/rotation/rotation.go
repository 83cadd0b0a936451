// Package rotation decides whether one sequence is a cyclic rotation of another.
//
// A sequence b is a rotation of a when moving the first k elements of a to
// its end yields b for some 0 <= k < len(a). Every rotation of a appears as a
// contiguous window of a+a, so the check reduces to a substring search over
// the doubled sequence, which [Index] performs in linear time.
package rotation

import "unicode/utf8"

// Is reports whether b is a cyclic rotation of a.
// Two empty sequences are rotations of each other.
func Is[S ~[]E, E comparable](a, b S) bool {
	_, ok := Offset(a, b)
	return ok
}

// Offset returns the smallest k such that rotating a left by k yields b.
// It returns -1, false if b is not a rotation of a.
func Offset[S ~[]E, E comparable](a, b S) (int, bool) {
	if len(a) != len(b) {
		return -1, false
	}

	n := len(a)
	if n == 0 {
		return 0, true
	}

	// a+a without its last element still holds every window starting in [0, n).
	doubled := make(S, 0, 2*n-1)
	doubled = append(doubled, a...)
	doubled = append(doubled, a[:n-1]...)

	k := Index(doubled, b)
	return k, k >= 0
}

// IsString reports whether b is a rotation of a, comparing bytes.
func IsString(a, b string) bool {
	_, ok := OffsetString(a, b)
	return ok
}

// OffsetString is [Offset] over the bytes of a and b.
// The offset is a byte count.
func OffsetString(a, b string) (int, bool) {
	if len(a) != len(b) {
		return -1, false
	}
	return Offset([]byte(a), []byte(b))
}

// IsStringRunes reports whether b is a rotation of a, comparing code points.
func IsStringRunes(a, b string) bool {
	_, ok := OffsetStringRunes(a, b)
	return ok
}

// OffsetStringRunes is [Offset] over the code points of a and b.
// The offset is a code point count. Invalid UTF-8 decodes to U+FFFD.
func OffsetStringRunes(a, b string) (int, bool) {
	if utf8.RuneCountInString(a) != utf8.RuneCountInString(b) {
		return -1, false
	}
	return Offset([]rune(a), []rune(b))
}

// Left returns a new slice holding s rotated left by k positions.
// k is taken modulo len(s); a negative k rotates right. s is not modified.
func Left[S ~[]E, E any](s S, k int) S {
	n := len(s)
	r := make(S, n)
	if n == 0 {
		return r
	}

	k %= n
	if k < 0 {
		k += n
	}

	copy(r, s[k:])
	copy(r[n-k:], s[:k])
	return r
}
