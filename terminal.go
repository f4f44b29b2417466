package bench

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal whether w writes to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
