package args

import (
	"fmt"
	"strings"
)

// ValidationError is returned when a required parameter is empty or nil.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	if len(e.Field) == 0 {
		return "validation error"
	}
	return fmt.Sprintf("validation error: %s must not be empty", e.Field)
}

func (e *ValidationError) Is(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// DuplicateDefinitionError is returned from [Arguments.Add] when a [Definition]'s name or aliases collide with one that is already registered.
type DuplicateDefinitionError struct {
	Name     string
	Existing string
}

func (e *DuplicateDefinitionError) Error() string {
	if len(e.Existing) == 0 {
		return fmt.Sprintf("duplicate argument definition '%s'", e.Name)
	}
	return fmt.Sprintf("duplicate argument definition '%s': collides with '%s'", e.Name, e.Existing)
}

func (e *DuplicateDefinitionError) Is(err error) bool {
	_, ok := err.(*DuplicateDefinitionError)
	return ok
}

// MissingArgumentError is returned when no value could be resolved for a name.
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing value for argument '%s'", e.Name)
}

func (e *MissingArgumentError) Is(err error) bool {
	_, ok := err.(*MissingArgumentError)
	return ok
}

// ConversionError is returned when a stored value can't be interpreted as the requested type.
type ConversionError struct {
	Name  string
	Value string
	Type  string
	Err   error
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("unable to convert value '%s' of argument '%s' to %s", e.Value, e.Name, e.Type)
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e *ConversionError) Is(err error) bool {
	_, ok := err.(*ConversionError)
	return ok
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// MissingValuesError collects a [MissingArgumentError] for each required [Definition] that has no value.
// Each of them may be found with [errors.Is] or [errors.As].
type MissingValuesError struct {
	errs []*MissingArgumentError
}

func (e *MissingValuesError) add(name string) {
	e.errs = append(e.errs, &MissingArgumentError{Name: name})
}

// Names returns the canonical names of the definitions missing a value.
func (e *MissingValuesError) Names() []string {
	names := make([]string, len(e.errs))
	for i, err := range e.errs {
		names[i] = err.Name
	}
	return names
}

func (e *MissingValuesError) Error() string {
	var buf strings.Builder
	for i, err := range e.errs {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(err.Error())
	}
	return buf.String()
}

func (e *MissingValuesError) Is(err error) bool {
	_, ok := err.(*MissingValuesError)
	return ok
}

func (e *MissingValuesError) Unwrap() []error {
	errs := make([]error, len(e.errs))
	for i, err := range e.errs {
		errs[i] = err
	}
	return errs
}
