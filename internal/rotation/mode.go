package rotation

import "fmt"

// Mode selects the element type a pair of strings is compared in.
type Mode string

const (
	Bytes Mode = "bytes"
	Runes Mode = "runes"
)

// ParseMode parses a mode name. The empty string is [Bytes].
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case "":
		return Bytes, nil
	case Bytes, Runes:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Offset dispatches to [OffsetStringRunes] for [Runes]
// and to [OffsetString] otherwise.
func (m Mode) Offset(a, b string) (int, bool) {
	if m == Runes {
		return OffsetStringRunes(a, b)
	}
	return OffsetString(a, b)
}
