package model

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosAlive = "▒▒"
	gridPosDead  = "░░"

	clearScreenSeq = "\x1b[2J\x1b[H"
)

// TerminalRenderer prints frames of a Grid as text
type TerminalRenderer struct {
	out io.Writer
}

// NewTerminalRenderer returns a renderer writing to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

// Display writes one frame: a row of glyphs per grid row, then the generation trailer
func (r *TerminalRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.out)
	for y := range g.Height() {
		for x := range g.Width() {
			if g.Cell(y*g.Width() + x) {
				w.WriteString(gridPosAlive)
			} else {
				w.WriteString(gridPosDead)
			}
		}
		w.WriteByte('\n')
	}
	fmt.Fprintf(w, "Days: %d\n", g.Generation())
	return errors.Wrap(w.Flush(), "[Display] failed to write frame")
}

// Clear erases the terminal and homes the cursor
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.out, clearScreenSeq)
	return errors.Wrap(err, "[Clear] failed to clear terminal")
}
