package scope

import (
	"fmt"
	"io"
	"strings"
)

// StyleElement is an inert wrapper over a scope's exported rule text,
// renderable as an HTML <style> container. It holds a snapshot: rules
// registered after StyleElement was called are not included.
type StyleElement struct {
	prefix string
	text   string
}

// StyleElement exports all registered rules wrapped for document emission,
// or nil when the scope holds no rules. Exactly one element should be
// emitted per scope, after all rule-defining calls.
func (s *Scope) StyleElement() *StyleElement {
	text, ok := s.CSSText()
	if !ok {
		return nil
	}
	return &StyleElement{prefix: s.prefix, text: text}
}

// CSS returns the wrapped rule text.
func (e *StyleElement) CSS() string {
	return e.text
}

// WriteTo writes the element as an HTML <style> tag, implementing
// io.WriterTo.
func (e *StyleElement) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "<style data-scope=%q>\n%s</style>\n", e.prefix, e.text)
	return int64(n), err
}

// String returns the element as an HTML <style> tag.
func (e *StyleElement) String() string {
	var b strings.Builder
	e.WriteTo(&b) //nolint:errcheck
	return b.String()
}
