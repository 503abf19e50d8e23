package main

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/argx/args"
	"github.com/saylorsolutions/argx/cli"
	flag "github.com/spf13/pflag"
	"io"
	"log/slog"
	"os"
)

const summary = `argx parses its arguments and prints the values it resolved.

USAGE:
argx -name:NAME [-threads N] [-verbose]`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("argx", flag.ContinueOnError)
	fs.BoolP("help", "h", false, "Prints this usage information")
	fs.BoolP("verbose", "v", false, "Logs how each argument was parsed")
	fs.StringP("name", "n", "", "Name to greet")
	fs.IntP("threads", "t", 1, "Number of worker threads")
	return fs
}

func parse(tokens []string, fs *flag.FlagSet, opts ...args.Option) (*args.Arguments, error) {
	arguments := args.Parse(tokens, opts...)
	if err := arguments.AddFlags(fs); err != nil {
		return nil, err
	}
	if def, ok := arguments.Definition("name"); ok {
		def.AsRequired()
	}
	return arguments, nil
}

func run(tokens []string, in *os.File, out, errOut io.Writer) int {
	printer := cli.NewPrinter()
	printer.Redirect(errOut)
	fs := newFlagSet()

	arguments, err := parse(tokens, fs)
	if err != nil {
		printer.Println("Failed to set up arguments:", err)
		return 1
	}
	verbose, err := args.GetOr(arguments, "verbose", false)
	if err != nil {
		printer.Println(err)
		return 2
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	// Parsed again so tokenization is logged.
	arguments, err = parse(tokens, fs, args.WithLogger(logger))
	if err != nil {
		printer.Println("Failed to set up arguments:", err)
		return 1
	}
	help, err := args.GetOr(arguments, "help", false)
	if err != nil {
		printer.Println(err)
		return 2
	}
	if help {
		cli.PrintHelp(printer, arguments, summary)
		return 0
	}

	if err := cli.NewPrompter(in, printer).PromptMissing(arguments); err != nil {
		printer.Println(err)
		printer.Println()
		cli.PrintHelp(printer, arguments, summary)
		if errors.Is(err, &cli.UsageError{}) {
			return 2
		}
		return 1
	}
	if err := arguments.Apply(fs); err != nil {
		printer.Println(err)
		return 2
	}

	for _, key := range arguments.Keys() {
		val, _ := arguments.Value(key)
		_, _ = fmt.Fprintf(out, "%s=%s\n", key, val)
	}
	name := args.Must(fs.GetString("name"))
	threads := args.Must(fs.GetInt("threads"))
	logger.Debug("Resolved flags", "name", name, "threads", threads)
	_, _ = fmt.Fprintf(out, "Hello, %s! (%d threads)\n", name, threads)
	return 0
}
