package args

import (
	flag "github.com/spf13/pflag"
)

// AddFlags registers a [Definition] for each flag in fs.
// The flag's shorthand becomes an alias, and its usage becomes the description.
// Use [Arguments.Definition] to mark any of them as required.
func (a *Arguments) AddFlags(fs *flag.FlagSet) error {
	if fs == nil {
		return &ValidationError{Field: "flag set"}
	}
	var err error
	fs.VisitAll(func(f *flag.Flag) {
		if err != nil {
			return
		}
		var aliases []string
		if len(f.Shorthand) > 0 {
			aliases = append(aliases, f.Shorthand)
		}
		def, defErr := NewDefinition(f.Name, aliases...)
		if defErr != nil {
			err = defErr
			return
		}
		if len(f.Usage) > 0 {
			def.description = f.Usage
		}
		err = a.Add(def)
	})
	return err
}

// Apply sets each flag in fs that has a value resolved by its name or shorthand.
// A [ConversionError] is returned if a value isn't valid for its flag.
func (a *Arguments) Apply(fs *flag.FlagSet) error {
	if fs == nil {
		return &ValidationError{Field: "flag set"}
	}
	var err error
	fs.VisitAll(func(f *flag.Flag) {
		if err != nil {
			return
		}
		val, ok := a.Value(f.Name)
		if !ok && len(f.Shorthand) > 0 {
			val, ok = a.Value(f.Shorthand)
		}
		if !ok {
			return
		}
		if setErr := fs.Set(f.Name, val); setErr != nil {
			err = &ConversionError{Name: f.Name, Value: val, Type: f.Value.Type(), Err: setErr}
		}
	})
	return err
}
