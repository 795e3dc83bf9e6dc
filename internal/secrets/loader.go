package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source describes how to load a credential value. Resolution order is
// File, then Env, then the inline Value.
type Source struct {
	// Name is used in error messages to give more context.
	Name string
	// Value is an inline value provided via configuration or flags.
	Value string
	// Env names an environment variable holding the value.
	Env string
	// File points to a file containing the value. When set it takes
	// precedence over everything else.
	File string
}

// Load returns the resolved credential from the provided source. The
// returned value is always trimmed. An error is returned when no part
// of the source yields a usable value.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	if file := strings.TrimSpace(src.File); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			return value, nil
		}
		return "", fmt.Errorf("%s file %q is empty", name, file)
	}

	if env := strings.TrimSpace(src.Env); env != "" {
		if value := strings.TrimSpace(os.Getenv(env)); value != "" {
			return value, nil
		}
	}

	if value := strings.TrimSpace(src.Value); value != "" {
		return value, nil
	}

	return "", fmt.Errorf("%s is not configured", name)
}
