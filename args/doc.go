/*
Package args parses command line tokens into case-insensitive name/value pairs, without requiring every argument to be declared up front.

	tokens := []string{"-source:./in", "/verbose", "--threads=5", "-out", "'./out dir'"}
	arguments := args.New(tokens...)
	threads, err := args.GetOr(arguments, "threads", 1)

Markers may be one or two dashes or a slash, and values may be attached with '=' or ':', or passed as the following token.
A parameter with no value is considered "true".

# Definitions

A [Definition] declares an expected argument with aliases, a description, and whether it's required.
Registering definitions with [Arguments.Add] allows values to be looked up by any alias, and supports [Arguments.Validate] and [Arguments.Help].

	def := args.Must(args.NewDefinition("threads", "t"))
	def = args.Must(def.WithDescription("Number of worker threads"))
	if err := arguments.Add(def.AsRequired()); err != nil {
		return err
	}

Definitions can also be derived from a [pflag.FlagSet] with [Arguments.AddFlags], and parsed values set back into it with [Arguments.Apply].

# Errors

Errors are returned as one of [ValidationError], [DuplicateDefinitionError], [MissingArgumentError], [ConversionError], or [MissingValuesError].
Each may be matched by kind with [errors.Is], for example:

	errors.Is(err, new(args.MissingArgumentError))

[pflag.FlagSet]: https://pkg.go.dev/github.com/spf13/pflag#FlagSet
*/
package args
