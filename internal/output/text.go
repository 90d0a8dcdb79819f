package output

import (
	"fmt"
	"io"
)

// OutputWriter writes space-separated tokens, wrapping lines at a maximum
// length.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	indent        string
}

// NewOutputWriter creates a new output writer. Continuation lines start
// with indent.
func NewOutputWriter(w io.Writer, maxLineLength int, indent string) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
		indent:        indent,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			fmt.Fprint(o.w, o.indent)
			o.lineLength = len(o.indent)
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// writeText writes the board diagram followed by one line per piece:
// "<glyph> <from>: <to> <to> ...".
func writeText(w io.Writer, r *Report, maxLineLength int) {
	if r.Index > 0 {
		fmt.Fprintf(w, "[%d] %s\n", r.Index, r.FEN)
	} else {
		fmt.Fprintf(w, "%s\n", r.FEN)
	}
	fmt.Fprint(w, r.Board)

	ow := NewOutputWriter(w, maxLineLength, "      ")
	for _, p := range r.Pieces {
		ow.Write(fmt.Sprintf("%s %s:", p.Glyph, p.Square))
		if len(p.Moves) == 0 {
			ow.Write("-")
		}
		for _, to := range p.Moves {
			ow.Write(to)
		}
		ow.NewLine()
	}
	fmt.Fprintf(w, "%d moves\n", r.TotalMoves)
}
