/*
Package argx provides ad-hoc command line argument parsing for programs that don't need a full flag framework.

  - [github.com/saylorsolutions/argx/args] parses tokens like "-name:value", "/name=value", "--flag", and "-name value" into case-insensitive values, with optional definitions for aliases, required values, and help text.
  - [github.com/saylorsolutions/argx/cli] has helpers for the host program: user-visible output, usage errors, help printing, and prompting for missing values at a terminal.

The argx command in cmd/argx shows how these fit together with a [pflag] flag set.

[pflag]: https://github.com/spf13/pflag
*/
package argx
