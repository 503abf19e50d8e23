package args

import (
	"github.com/saylorsolutions/argx/internal/strset"
	"io"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"
)

const trueValue = "true"

// tokenPattern splits a token into at most 3 parts.
// A leading marker yields an empty first part, so "-name:value" becomes ["", "name", "value"].
var tokenPattern = regexp.MustCompile(`^-{1,2}|^/|=|:`)

// Arguments holds values parsed from a sequence of command line tokens, and the [Definition]s used to resolve them.
//
// Note that Arguments is not concurrency safe.
type Arguments struct {
	tokens      []string
	values      map[string]string
	definitions map[string]*Definition
	logger      *slog.Logger
}

// Option configures [Arguments] at construction time.
type Option func(a *Arguments)

// WithLogger sets a logger that receives debug messages while tokens are parsed.
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Arguments) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New parses the given tokens, usually os.Args[1:].
func New(tokens ...string) *Arguments {
	return Parse(tokens)
}

// Parse is like [New], but accepts [Option]s.
//
// Tokens may be in any of these forms:
//   - -name, --name, or /name starts a parameter. It takes the next token as a value, or "true" if no value follows.
//   - -name:value, -name=value, and the same with other leading markers sets a value directly.
//   - A value wrapped in matching single or double quotes has the quotes removed.
//
// The first value set for a name is kept, and names are compared case-insensitive.
func Parse(tokens []string, opts ...Option) *Arguments {
	a := &Arguments{
		tokens:      slices.Clone(tokens),
		values:      map[string]string{},
		definitions: map[string]*Definition{},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	a.tokenize()
	return a
}

func (a *Arguments) tokenize() {
	var pending string
	resolvePending := func() {
		if len(pending) > 0 {
			a.setInitial(pending, trueValue)
			pending = ""
		}
	}
	for _, token := range a.tokens {
		parts := tokenPattern.Split(token, 3)
		switch len(parts) {
		case 1:
			if len(pending) == 0 {
				a.logger.Debug("Ignoring value without a parameter", "token", token)
				continue
			}
			a.setInitial(pending, unquote(parts[0]))
			pending = ""
		case 2:
			resolvePending()
			pending = parts[1]
		case 3:
			resolvePending()
			a.setInitial(parts[1], unquote(parts[2]))
		}
	}
	resolvePending()
}

// setInitial stores a value only if the key hasn't been seen yet.
func (a *Arguments) setInitial(name, value string) {
	key := strset.Normalize(name)
	if len(key) == 0 {
		a.logger.Debug("Ignoring value with an empty name", "value", value)
		return
	}
	if _, ok := a.values[key]; ok {
		a.logger.Debug("Ignoring repeated argument", "name", key, "value", value)
		return
	}
	a.logger.Debug("Parsed argument", "name", key, "value", value)
	a.values[key] = value
}

func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if first == last && (first == '"' || first == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}

// Tokens returns a copy of the tokens these [Arguments] were parsed from.
func (a *Arguments) Tokens() []string {
	return slices.Clone(a.tokens)
}

// Keys returns the sorted, normalized names that have a value.
func (a *Arguments) Keys() []string {
	return slices.Sorted(maps.Keys(a.values))
}

// AddValue sets the value for key, replacing any value already present.
func (a *Arguments) AddValue(key, value string) error {
	key = strset.Normalize(strings.TrimSpace(key))
	if len(key) == 0 {
		return &ValidationError{Field: "key"}
	}
	a.values[key] = value
	return nil
}

// Value resolves the value for name.
// If name doesn't have a value directly, then the registered [Definition] that name refers to is used to look up a value by its name, then by each alias in order.
func (a *Arguments) Value(name string) (string, bool) {
	key := strset.Normalize(name)
	if val, ok := a.values[key]; ok {
		return val, true
	}
	def, ok := a.definitionFor(key)
	if !ok {
		return "", false
	}
	for _, k := range def.keys() {
		if val, ok := a.values[k]; ok {
			return val, true
		}
	}
	return "", false
}

// Contains reports whether a value can be resolved for name.
func (a *Arguments) Contains(name string) bool {
	_, ok := a.Value(name)
	return ok
}

// Add registers a [Definition].
// A [DuplicateDefinitionError] is returned if the name or any alias is already used by another [Definition].
func (a *Arguments) Add(def *Definition) error {
	if def == nil {
		return &ValidationError{Field: "definition"}
	}
	for _, existing := range a.definitions {
		if existing.overlaps(def) {
			return &DuplicateDefinitionError{Name: def.Name(), Existing: existing.Name()}
		}
	}
	a.definitions[def.key] = def
	return nil
}

// Definition returns the registered [Definition] that name refers to.
func (a *Arguments) Definition(name string) (*Definition, bool) {
	return a.definitionFor(strset.Normalize(name))
}

func (a *Arguments) definitionFor(key string) (*Definition, bool) {
	if len(key) == 0 {
		return nil, false
	}
	if def, ok := a.definitions[key]; ok {
		return def, true
	}
	for _, def := range a.definitions {
		if def.aliases.Has(key) {
			return def, true
		}
	}
	return nil, false
}

// Definitions returns the registered definitions sorted by name.
func (a *Arguments) Definitions() []*Definition {
	defs := make([]*Definition, 0, len(a.definitions))
	for _, key := range slices.Sorted(maps.Keys(a.definitions)) {
		defs = append(defs, a.definitions[key])
	}
	return defs
}

func (a *Arguments) hasValueFor(def *Definition) bool {
	for _, key := range def.keys() {
		if _, ok := a.values[key]; ok {
			return true
		}
	}
	return false
}

// HasMissingValues reports whether any required [Definition] has no value.
func (a *Arguments) HasMissingValues() bool {
	for _, def := range a.definitions {
		if def.required && !a.hasValueFor(def) {
			return true
		}
	}
	return false
}

// Validate returns a [MissingValuesError] listing every required [Definition] without a value, or nil if there are none.
func (a *Arguments) Validate() error {
	missing := new(MissingValuesError)
	for _, def := range a.Definitions() {
		if def.required && !a.hasValueFor(def) {
			missing.add(def.Name())
		}
	}
	if len(missing.errs) > 0 {
		return missing
	}
	return nil
}

// Help renders [Definition.Help] for each registered [Definition], one per line.
func (a *Arguments) Help(opts ...HelpOption) string {
	defs := a.Definitions()
	lines := make([]string, len(defs))
	for i, def := range defs {
		lines[i] = def.Help(opts...)
	}
	return strings.Join(lines, "\n")
}
