package args

import (
	"os"
	"strings"
)

// FromEnv creates [Arguments] from environment variables that start with prefix, compared case-insensitive.
// The prefix is removed, and underscores become dashes, so with a prefix of "APP_" the variable APP_MAX_THREADS=5 is parsed like "--max-threads=5".
//
// Only variables that match the prefix are considered. An empty prefix includes every variable.
func FromEnv(prefix string, opts ...Option) *Arguments {
	return Parse(envTokens(os.Environ(), prefix), opts...)
}

func envTokens(environ []string, prefix string) []string {
	prefix = strings.ToLower(prefix)
	var tokens []string
	for i := 0; i < len(environ); i++ {
		key, val, found := strings.Cut(environ[i], "=")
		if !found {
			continue
		}
		key = strings.ToLower(key)
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		name := strings.ReplaceAll(strings.TrimPrefix(key, prefix), "_", "-")
		name = strings.TrimLeft(name, "-")
		if len(name) == 0 {
			continue
		}
		tokens = append(tokens, "--"+name+"="+val)
	}
	return tokens
}
