package skiscenes

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// progress writes one confirmation line for a finished file.
func (g *Generator) progress(filename, label string) {
	_, _ = fmt.Fprintf(g.out, "  %s %s (%s)\n", doneMark(g.out), filename, label)
}

// doneMark returns a check mark for interactive terminals and plain
// ASCII for pipes and files.
func doneMark(w io.Writer) string {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "✓"
	}
	return "ok"
}
