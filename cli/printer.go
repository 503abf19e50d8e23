package cli

import (
	"fmt"
	"io"
	"os"
)

// Printer writes user-visible output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a [Printer] that writes to STDERR.
func NewPrinter() *Printer {
	return &Printer{out: os.Stderr}
}

// Redirect sends output to writer instead. A nil writer discards output.
func (p *Printer) Redirect(writer io.Writer) {
	if writer == nil {
		writer = io.Discard
	}
	p.out = writer
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}
