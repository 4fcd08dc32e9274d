// Package cliutil holds small helpers shared by the apidrift CLI commands.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef formats and writes report output. A failed write is reported on
// stderr rather than returned; CLI rendering has no error path to thread
// it through.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
