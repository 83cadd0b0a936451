// Command rotcheck exits 0 if its second argument is a rotation of its first,
// and 1 if it is not.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"rotcheck/internal/ctxlog"
	"rotcheck/internal/rec"
	"rotcheck/internal/rotation"
)

const (
	exitRotation    = 0
	exitNotRotation = 1
	exitUsage       = 2
	exitFailed      = 3
)

func run(ctx context.Context, args []string, stderr io.Writer) (code int) {
	logger := ctxlog.Get(ctx)
	defer rec.Code(&code, exitFailed, func(err error) {
		logger.Error("check failed", "error", err)
	})

	if len(args) != 3 {
		fmt.Fprintln(stderr, "Usage: rotcheck <string1> <string2>")
		return exitUsage
	}

	a, b := args[1], args[2]

	offset, ok := rotation.OffsetString(a, b)
	logger.Debug("checked rotation", "a", a, "b", b, "rotation", ok, "offset", offset)

	if !ok {
		return exitNotRotation
	}
	return exitRotation
}

func main() {
	ctx := ctxlog.Store(context.Background(), ctxlog.New("rotcheck", ctxlog.Config{}))

	os.Exit(run(ctx, os.Args, os.Stderr))
}
