package rotation

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"testing"
)

func TestIndex(t *testing.T) {
	for _, tc := range []struct {
		text, pattern string
		want          int
	}{
		{"", "", 0},
		{"abc", "", 0},
		{"", "a", -1},
		{"abc", "abcd", -1},
		{"abcabc", "cab", 2},
		{"aaaaab", "aab", 3},
		{"abababca", "ababca", 2},
		{"abcdabd", "abd", 4},
		{"mississippi", "issip", 4},
	} {
		t.Run(fmt.Sprintf("%q/%q", tc.text, tc.pattern), func(t *testing.T) {
			if have := Index([]byte(tc.text), []byte(tc.pattern)); have != tc.want {
				t.Fatalf("Index = %d, want %d", have, tc.want)
			}
		})
	}
}

func TestIndexRand(t *testing.T) {
	for range 2000 {
		text := []byte(randStr(rand.IntN(30), "ab"))
		pattern := []byte(randStr(rand.IntN(6), "ab"))

		if have, want := Index(text, pattern), bytes.Index(text, pattern); have != want {
			t.Fatalf("Index(%q, %q) = %d, bytes.Index = %d", text, pattern, have, want)
		}
	}
}

func TestBorders(t *testing.T) {
	have := borders([]byte("aabaaab"))
	want := []int{0, 1, 0, 1, 2, 2, 3}
	if fmt.Sprint(have) != fmt.Sprint(want) {
		t.Fatalf("borders = %v, want %v", have, want)
	}
}
