package rotation

import "errors"

// ErrUnknownMode is returned by [ParseMode] for names other than "bytes" and "runes".
var ErrUnknownMode = errors.New("unknown mode")
