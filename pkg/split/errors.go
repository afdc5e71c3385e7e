package split

import "fmt"

// ParseError is the only recoverable error the splitter produces. It
// wraps the structural parser's diagnostic; everything downstream of a
// successful parse operates on validated in-memory data and cannot fail.
type ParseError struct {
	// Path is the logical path of the document, if known.
	Path string

	// Err is the underlying parser diagnostic.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("parse: %v", e.Err)
}

// Unwrap returns the underlying parser error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
