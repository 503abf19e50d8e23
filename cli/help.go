package cli

import (
	"github.com/saylorsolutions/argx/args"
	"strings"
)

// HelpOptions are used by [PrintHelp] when no other options are given.
var HelpOptions = []args.HelpOption{
	args.HelpTemplate("  {optional-start-tag}-{name}{aliases}{optional-end-tag}  {description}"),
	args.AliasSeparator(", -"),
}

// PrintHelp prints the summary followed by help for each [args.Definition] registered in arguments.
func PrintHelp(p *Printer, arguments *args.Arguments, summary string, opts ...args.HelpOption) {
	if len(opts) == 0 {
		opts = HelpOptions
	}
	var buf strings.Builder
	if len(summary) > 0 {
		buf.WriteString(strings.TrimSuffix(summary, "\n") + "\n")
	}
	if len(arguments.Definitions()) > 0 {
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString("ARGUMENTS\n")
		buf.WriteString(arguments.Help(opts...))
		buf.WriteString("\n")
	}
	p.Print(buf.String())
}
