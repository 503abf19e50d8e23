/*
Package cli provides helpers for a host program that parses its arguments with [args.Arguments].

There are a few reasonable (IMHO) policies for how this operates.

  - User-visible output should go to STDERR by default. This is supported with a configurable [Printer].
  - Usage information is rendered from registered definitions with [PrintHelp], so it can't drift from what's actually parsed.
  - A [UsageError] signals that the user should be shown usage information.
  - Missing required values may be requested from a user at a terminal with a [Prompter], but never from a pipe or file.

# Prompting

A [Prompter] only prompts if its input is a terminal.
Otherwise, [Prompter.PromptMissing] returns a [UsageError] wrapping an [args.MissingValuesError], so scripted invocations fail fast instead of hanging on input.

[args.Arguments]: https://pkg.go.dev/github.com/saylorsolutions/argx/args#Arguments
[args.MissingValuesError]: https://pkg.go.dev/github.com/saylorsolutions/argx/args#MissingValuesError
*/
package cli
