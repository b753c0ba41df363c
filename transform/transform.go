// Package transform post-processes compiled rule text before it is stored.
// Transformers are pure text-to-text functions; the package-wide default is
// a memoized normalizer shared by all scopes in the process.
package transform

// Transformer rewrites compiled CSS text. Implementations must be pure:
// the same input always produces the same output.
type Transformer interface {
	Transform(text string) string
}

// Func adapts a plain function to the Transformer interface.
type Func func(string) string

// Transform implements Transformer.
func (f Func) Transform(text string) string { return f(text) }

// Nop returns its input unchanged. Inject it in tests that compare exact
// compiler output.
var Nop Transformer = Func(func(text string) string { return text })

// std is the process-wide transformer used when a scope is constructed
// without an explicit one. Memoization is keyed by exact input text, so a
// rule shared by many scopes is normalized once.
var std = NewMemoized(Normalizer{})

// Default returns the shared memoized normalizer.
func Default() Transformer { return std }
