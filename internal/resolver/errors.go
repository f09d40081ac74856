package resolver

import (
	"fmt"
	"strings"
)

// ConfigIncludeError is the general include-resolution failure: an invalid
// directive, an unreadable or unparsable include file, sibling keys next to
// non-object content, or the depth limit. It is terminal for the resolution
// that raised it.
type ConfigIncludeError struct {
	// Message is the fully formed diagnostic, including the offending path
	// or type where one applies.
	Message string

	// Err is the underlying cause for read and parse failures, nil
	// otherwise.
	Err error
}

func (e *ConfigIncludeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ConfigIncludeError) Unwrap() error { return e.Err }

// includeErrorf builds a ConfigIncludeError with a formatted message and no
// underlying cause.
func includeErrorf(format string, args ...any) *ConfigIncludeError {
	return &ConfigIncludeError{Message: fmt.Sprintf(format, args...)}
}

// CircularIncludeError reports that an include target is already being
// expanded further up the active chain.
type CircularIncludeError struct {
	// Chain holds the absolute paths from the root document to the repeated
	// one, in expansion order. The repeated path appears both where it was
	// first opened and at the end.
	Chain []string
}

func (e *CircularIncludeError) Error() string {
	return "Circular include detected: " + strings.Join(e.Chain, " -> ")
}
