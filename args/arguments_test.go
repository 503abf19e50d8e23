package args

import (
	"bytes"
	"errors"
	"github.com/stretchr/testify/assert"
	"log/slog"
	"testing"
)

func TestArguments_SimpleArguments(t *testing.T) {
	arguments := New("-arg1:arg1value", "/arg2", "arg2value", "--enabled", "/threads=5")

	assertValue(t, arguments, "arg1", "arg1value")
	assertValue(t, arguments, "arg2", "arg2value")
	assertValue(t, arguments, "enabled", "true")
	assertValue(t, arguments, "threads", "5")
	assertValue(t, arguments, "THREADS", "5")
	assert.Equal(t, []string{"arg1", "arg2", "enabled", "threads"}, arguments.Keys())

	assert.True(t, Must(GetOr(arguments, "enabled", false)))
	assert.True(t, Must(GetOr(arguments, "disabled", true)))
	assert.Equal(t, 5, Must(GetOr(arguments, "threads", 5)))
	assert.Equal(t, "5", Must(Get[string](arguments, "threads")))

	_, ok := arguments.Value("bogus")
	assert.False(t, ok)
	assert.False(t, arguments.Contains("bogus"))
	_, err := Get[int](arguments, "bogus")
	assert.ErrorIs(t, err, &MissingArgumentError{})
}

func TestArguments_Tokenize(t *testing.T) {
	tests := map[string]struct {
		tokens   []string
		expected map[string]string
	}{
		"No tokens": {
			expected: map[string]string{},
		},
		"Trailing parameter is true": {
			tokens:   []string{"-a"},
			expected: map[string]string{"a": "true"},
		},
		"Superseded parameter is true": {
			tokens:   []string{"-a", "--b", "value"},
			expected: map[string]string{"a": "true", "b": "value"},
		},
		"Superseded by a pair": {
			tokens:   []string{"/a", "-b:value"},
			expected: map[string]string{"a": "true", "b": "value"},
		},
		"Value without parameter ignored": {
			tokens:   []string{"stray", "-a", "value", "another"},
			expected: map[string]string{"a": "value"},
		},
		"Empty marker ignored": {
			tokens:   []string{"-", "value", "--", "/"},
			expected: map[string]string{},
		},
		"First occurrence wins": {
			tokens:   []string{"-a:first", "-A", "second", "/a=third", "-a"},
			expected: map[string]string{"a": "first"},
		},
		"Keys lowercased": {
			tokens:   []string{"-MixedCase:Value"},
			expected: map[string]string{"mixedcase": "Value"},
		},
		"Only the first separator splits": {
			tokens:   []string{"-url:http://localhost:8080/path", "--query=a=b"},
			expected: map[string]string{"url": "http://localhost:8080/path", "query": "a=b"},
		},
		"Empty attached value": {
			tokens:   []string{"-a:"},
			expected: map[string]string{"a": ""},
		},
		"Double quotes stripped": {
			tokens:   []string{"-a", `"quoted value"`, `-b:"x"`},
			expected: map[string]string{"a": "quoted value", "b": "x"},
		},
		"Single quotes stripped": {
			tokens:   []string{"-a", `'quoted value'`},
			expected: map[string]string{"a": "quoted value"},
		},
		"Mismatched quotes kept": {
			tokens:   []string{"-a", `'value"`, `-b:"x`},
			expected: map[string]string{"a": `'value"`, "b": `"x`},
		},
		"Lone quote kept": {
			tokens:   []string{"-a", `"`},
			expected: map[string]string{"a": `"`},
		},
		"Unmarked pair names the last part": {
			tokens:   []string{"name=value"},
			expected: map[string]string{"value": "true"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			arguments := New(tc.tokens...)
			assert.Equal(t, tc.expected, arguments.values)
		})
	}
}

func TestArguments_Tokens(t *testing.T) {
	tokens := []string{"-A:'one'", "/b"}
	arguments := New(tokens...)
	result := arguments.Tokens()
	assert.Equal(t, tokens, result)

	result[0] = "changed"
	assert.Equal(t, "-A:'one'", arguments.Tokens()[0])
	tokens[1] = "changed"
	assert.Equal(t, "/b", arguments.Tokens()[1])
}

func TestArguments_AddValue(t *testing.T) {
	arguments := New("-a:first")
	assert.NoError(t, arguments.AddValue("A", "second"))
	assertValue(t, arguments, "a", "second")

	assert.NoError(t, arguments.AddValue("new", "value"))
	assertValue(t, arguments, "NEW", "value")

	assert.ErrorIs(t, arguments.AddValue("", "value"), &ValidationError{})
	assert.ErrorIs(t, arguments.AddValue(" ", "value"), &ValidationError{})
}

func TestArguments_Add_Duplicate(t *testing.T) {
	arguments := New()
	assert.NoError(t, arguments.Add(Must(NewDefinition("arg1", "a1"))))

	tests := map[string]*Definition{
		"Same name":            Must(NewDefinition("arg1")),
		"Same name, any case":  Must(NewDefinition("ARG1")),
		"Alias matches alias":  Must(NewDefinition("arg2", "a1")),
		"Alias matches name":   Must(NewDefinition("arg3", "Arg1")),
		"Name matches alias":   Must(NewDefinition("A1")),
		"One of many overlaps": Must(NewDefinition("arg4", "x", "y", "a1")),
	}
	for name, def := range tests {
		t.Run(name, func(t *testing.T) {
			err := arguments.Add(def)
			assert.ErrorIs(t, err, &DuplicateDefinitionError{})
			var dupe *DuplicateDefinitionError
			assert.True(t, errors.As(err, &dupe))
			assert.Equal(t, "arg1", dupe.Existing)
		})
	}

	assert.NoError(t, arguments.Add(Must(NewDefinition("arg2", "a2"))))
	assert.Len(t, arguments.Definitions(), 2)
	assert.ErrorIs(t, arguments.Add(nil), &ValidationError{})
}

func TestArguments_Alias(t *testing.T) {
	arguments := New("-a1:one", "/arg2=two")
	assert.NoError(t, arguments.Add(Must(NewDefinition("arg1", "a1"))))
	assert.NoError(t, arguments.Add(Must(NewDefinition("arg2", "a2"))))

	assert.True(t, arguments.Contains("arg1"))
	assert.True(t, arguments.Contains("a2"))
	assert.True(t, arguments.Contains("A1"))
	assert.False(t, arguments.Contains("a3"))

	assert.Equal(t, "one", Must(Get[string](arguments, "arg1")))
	assert.Equal(t, "two", Must(Get[string](arguments, "a2")))
}

func TestArguments_Alias_DeclarationOrder(t *testing.T) {
	arguments := New("-third:3", "-second:2")
	assert.NoError(t, arguments.Add(Must(NewDefinition("first", "second", "third"))))
	assertValue(t, arguments, "first", "2")
	assertValue(t, arguments, "third", "3")

	assert.NoError(t, arguments.AddValue("first", "1"))
	assertValue(t, arguments, "second", "2")
	assertValue(t, arguments, "other-unregistered", "")
}

func TestArguments_Definition(t *testing.T) {
	arguments := New()
	def := Must(NewDefinition("threads", "t"))
	assert.NoError(t, arguments.Add(def))

	found, ok := arguments.Definition("T")
	assert.True(t, ok)
	assert.Same(t, def, found)
	found, ok = arguments.Definition("Threads")
	assert.True(t, ok)
	assert.Same(t, def, found)

	_, ok = arguments.Definition("bogus")
	assert.False(t, ok)
	_, ok = arguments.Definition("")
	assert.False(t, ok)
}

func TestArguments_HasMissingValues(t *testing.T) {
	arguments := New("-a1:one")
	assert.False(t, arguments.HasMissingValues())
	assert.NoError(t, arguments.Validate())

	assert.NoError(t, arguments.Add(Must(NewDefinition("arg1", "a1")).AsRequired()))
	assert.False(t, arguments.HasMissingValues(), "Required value is present by alias")

	assert.NoError(t, arguments.Add(Must(NewDefinition("arg2", "a2")).AsRequired()))
	assert.NoError(t, arguments.Add(Must(NewDefinition("arg3", "a3"))))
	assert.True(t, arguments.HasMissingValues())

	assert.NoError(t, arguments.AddValue("a2", "two"))
	assert.False(t, arguments.HasMissingValues())
}

func TestArguments_Validate(t *testing.T) {
	arguments := New("-b:value")
	assert.NoError(t, arguments.Add(Must(NewDefinition("c")).AsRequired()))
	assert.NoError(t, arguments.Add(Must(NewDefinition("b")).AsRequired()))
	assert.NoError(t, arguments.Add(Must(NewDefinition("a")).AsRequired()))

	err := arguments.Validate()
	assert.ErrorIs(t, err, &MissingValuesError{})
	assert.ErrorIs(t, err, &MissingArgumentError{})

	var missing *MissingValuesError
	assert.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"a", "c"}, missing.Names())
	assert.Equal(t, "missing value for argument 'a'\nmissing value for argument 'c'", err.Error())

	var single *MissingArgumentError
	assert.True(t, errors.As(err, &single))
	assert.Equal(t, "a", single.Name)
}

func TestArguments_Help(t *testing.T) {
	arguments := New()
	assert.Empty(t, arguments.Help())

	assert.NoError(t, arguments.Add(Must(Must(NewDefinition("threads", "t")).WithDescription("Number of threads"))))
	assert.NoError(t, arguments.Add(Must(Must(NewDefinition("name")).WithDescription("Name to greet")).AsRequired()))
	assert.Equal(t, "-name : Name to greet\n-threads|t : Number of threads", arguments.Help())
	assert.Equal(t, "name\nthreads", arguments.Help(HelpTemplate("{name}")))
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	arguments := Parse([]string{"stray", "-a:one", "-a:two"}, WithLogger(logger), WithLogger(nil), nil)
	assertValue(t, arguments, "a", "one")

	logs := buf.String()
	assert.Contains(t, logs, "Ignoring value without a parameter")
	assert.Contains(t, logs, "Parsed argument")
	assert.Contains(t, logs, "Ignoring repeated argument")
}

func assertValue(t *testing.T, arguments *Arguments, name, expected string) {
	t.Helper()
	val, ok := arguments.Value(name)
	if len(expected) == 0 {
		assert.False(t, ok, "Should not have a value for '%s'", name)
		return
	}
	assert.True(t, ok, "Should have a value for '%s'", name)
	assert.Equal(t, expected, val)
}
