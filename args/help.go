package args

import (
	"strings"
)

const (
	DefaultHelpTemplate     = "-{name}{aliases} : {description}"
	DefaultAliasSeparator   = "|"
	DefaultOptionalStartTag = "["
	DefaultOptionalEndTag   = "]"
)

// HelpOptions controls how [Definition.Help] renders a help line.
//
// The Template may reference {name}, {description}, {aliases}, {optional-start-tag}, and {optional-end-tag}.
// The {aliases} placeholder renders as each alias preceded by the AliasSeparator, and is empty if there are no aliases.
// Optional tags are only rendered for a [Definition] that is not required.
type HelpOptions struct {
	Template         string
	AliasSeparator   string
	OptionalStartTag string
	OptionalEndTag   string
}

// HelpOption modifies [HelpOptions].
type HelpOption func(opts *HelpOptions)

// HelpTemplate overrides [DefaultHelpTemplate].
func HelpTemplate(template string) HelpOption {
	return func(opts *HelpOptions) {
		opts.Template = template
	}
}

// AliasSeparator overrides [DefaultAliasSeparator].
func AliasSeparator(separator string) HelpOption {
	return func(opts *HelpOptions) {
		opts.AliasSeparator = separator
	}
}

// OptionalTags overrides [DefaultOptionalStartTag] and [DefaultOptionalEndTag].
func OptionalTags(start, end string) HelpOption {
	return func(opts *HelpOptions) {
		opts.OptionalStartTag = start
		opts.OptionalEndTag = end
	}
}

func newHelpOptions(opts []HelpOption) HelpOptions {
	options := HelpOptions{
		Template:         DefaultHelpTemplate,
		AliasSeparator:   DefaultAliasSeparator,
		OptionalStartTag: DefaultOptionalStartTag,
		OptionalEndTag:   DefaultOptionalEndTag,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	return options
}

// Help renders a help line for this [Definition].
// See [HelpOptions] for the placeholders supported in the template.
func (d *Definition) Help(opts ...HelpOption) string {
	options := newHelpOptions(opts)
	var aliases string
	if d.aliases.Len() > 0 {
		aliases = options.AliasSeparator + strings.Join(d.aliases.Slice(), options.AliasSeparator)
	}
	startTag, endTag := options.OptionalStartTag, options.OptionalEndTag
	if d.required {
		startTag, endTag = "", ""
	}
	return strings.NewReplacer(
		"{name}", d.name,
		"{description}", d.description,
		"{aliases}", aliases,
		"{optional-start-tag}", startTag,
		"{optional-end-tag}", endTag,
	).Replace(options.Template)
}
