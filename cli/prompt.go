package cli

import (
	"bufio"
	"errors"
	"github.com/saylorsolutions/argx/args"
	"golang.org/x/term"
	"io"
	"os"
	"strings"
)

// Prompter requests values for required definitions that weren't provided on the command line.
type Prompter struct {
	reader   io.Reader
	terminal bool
	printer  *Printer
}

// NewPrompter creates a [Prompter] that reads from in, and writes prompts with printer.
// A nil printer will use [NewPrinter].
//
// Passing a nil file to this function will panic.
func NewPrompter(in *os.File, printer *Printer) *Prompter {
	if in == nil {
		panic("nil input file")
	}
	if printer == nil {
		printer = NewPrinter()
	}
	return &Prompter{
		reader:   in,
		terminal: term.IsTerminal(int(in.Fd())),
		printer:  printer,
	}
}

// IsTerminal reports whether this [Prompter] will prompt the user.
func (p *Prompter) IsTerminal() bool {
	return p.terminal
}

// PromptMissing asks for a value for each required [args.Definition] that doesn't have one, in name order.
// Entered values are stored with [args.Arguments.AddValue].
//
// If the input is not a terminal, or the user enters an empty value, then a [UsageError] is returned.
func (p *Prompter) PromptMissing(arguments *args.Arguments) error {
	err := arguments.Validate()
	if err == nil {
		return nil
	}
	var missing *args.MissingValuesError
	if !errors.As(err, &missing) {
		return err
	}
	if !p.terminal {
		return AsUsageError(err)
	}
	scanner := bufio.NewScanner(p.reader)
	for _, name := range missing.Names() {
		def, ok := arguments.Definition(name)
		if !ok {
			continue
		}
		p.printer.Print(promptLabel(def))
		if !scanner.Scan() {
			if scanErr := scanner.Err(); scanErr != nil {
				return scanErr
			}
			return AsUsageError(&args.MissingArgumentError{Name: name})
		}
		val := strings.TrimSpace(scanner.Text())
		if len(val) == 0 {
			return AsUsageError(&args.MissingArgumentError{Name: name})
		}
		if err := arguments.AddValue(def.Name(), val); err != nil {
			return err
		}
	}
	return nil
}

func promptLabel(def *args.Definition) string {
	if len(def.Description()) == 0 {
		return def.Name() + ": "
	}
	return def.Name() + " (" + def.Description() + "): "
}
