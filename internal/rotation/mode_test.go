package rotation

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Mode
		err  error
	}{
		{"", Bytes, nil},
		{"bytes", Bytes, nil},
		{"runes", Runes, nil},
		{"Runes", "", ErrUnknownMode},
		{"words", "", ErrUnknownMode},
	} {
		have, err := ParseMode(tc.in)
		if !errors.Is(err, tc.err) {
			t.Errorf("ParseMode(%q) error = %v, want %v", tc.in, err, tc.err)
			continue
		}
		if have != tc.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tc.in, have, tc.want)
		}
	}
}

func TestModeOffset(t *testing.T) {
	if have, _ := Bytes.Offset("héllo", "llohé"); have != 3 {
		t.Errorf("Bytes.Offset = %d, want 3", have)
	}
	if have, _ := Runes.Offset("héllo", "llohé"); have != 2 {
		t.Errorf("Runes.Offset = %d, want 2", have)
	}
	if _, ok := Runes.Offset("abc", "acb"); ok {
		t.Error("Runes.Offset matched a non-rotation")
	}
}
