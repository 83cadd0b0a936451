package rotation

// Index returns the index of the first occurrence of pattern in text,
// or -1 if pattern does not occur. The empty pattern occurs at 0.
//
// Index is Knuth-Morris-Pratt: O(len(text)+len(pattern)) time in the worst
// case and O(len(pattern)) extra space.
func Index[S ~[]E, E comparable](text, pattern S) int {
	m := len(pattern)
	if m == 0 {
		return 0
	}
	if m > len(text) {
		return -1
	}

	border := borders(pattern)

	k := 0 // matched prefix length
	for i, e := range text {
		for k > 0 && e != pattern[k] {
			k = border[k-1]
		}
		if e == pattern[k] {
			k++
		}
		if k == m {
			return i - m + 1
		}
	}
	return -1
}

// borders returns the failure table of p: border[i] is the length of the
// longest proper prefix of p[:i+1] that is also a suffix of it.
func borders[S ~[]E, E comparable](p S) []int {
	border := make([]int, len(p))

	k := 0
	for i := 1; i < len(p); i++ {
		for k > 0 && p[i] != p[k] {
			k = border[k-1]
		}
		if p[i] == p[k] {
			k++
		}
		border[i] = k
	}
	return border
}
