package args

import (
	"github.com/saylorsolutions/argx/internal/strset"
	"strings"
)

// Definition describes an expected argument with a canonical name, optional aliases, and whether a value is required.
type Definition struct {
	name        string
	key         string
	aliases     *strset.Set
	required    bool
	description string
}

// NewDefinition creates a [Definition] with the given name and aliases.
// A [ValidationError] is returned if the name is empty.
//
// Names are compared case-insensitive, so aliases that match the name are dropped, and repeated aliases are only kept once.
func NewDefinition(name string, aliases ...string) (*Definition, error) {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return nil, &ValidationError{Field: "name"}
	}
	def := &Definition{
		name:    name,
		key:     strset.Normalize(name),
		aliases: strset.New(),
	}
	for _, alias := range aliases {
		alias = strings.TrimSpace(alias)
		if strset.Normalize(alias) == def.key {
			continue
		}
		def.aliases.Add(alias)
	}
	return def, nil
}

func (d *Definition) Name() string {
	return d.name
}

// Aliases returns the normalized aliases in declaration order.
func (d *Definition) Aliases() []string {
	return d.aliases.Slice()
}

func (d *Definition) Required() bool {
	return d.required
}

func (d *Definition) Description() string {
	return d.description
}

// IsSatisfiedBy reports whether candidate refers to this [Definition] by name or alias.
func (d *Definition) IsSatisfiedBy(candidate string) (bool, error) {
	if len(candidate) == 0 {
		return false, &ValidationError{Field: "candidate"}
	}
	return d.satisfiedBy(candidate), nil
}

func (d *Definition) satisfiedBy(candidate string) bool {
	return strset.Normalize(candidate) == d.key || d.aliases.Has(candidate)
}

// keys returns the canonical key followed by aliases in declaration order.
func (d *Definition) keys() []string {
	return append([]string{d.key}, d.aliases.Slice()...)
}

func (d *Definition) overlaps(other *Definition) bool {
	for _, key := range other.keys() {
		if d.satisfiedBy(key) {
			return true
		}
	}
	return false
}

// AsRequired marks this [Definition] as requiring a value.
func (d *Definition) AsRequired() *Definition {
	d.required = true
	return d
}

// WithDescription sets the text used for {description} in [Definition.Help].
func (d *Definition) WithDescription(text string) (*Definition, error) {
	if len(text) == 0 {
		return nil, &ValidationError{Field: "description"}
	}
	d.description = text
	return d, nil
}
