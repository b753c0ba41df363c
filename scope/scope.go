// Package scope implements the public styling surface: one Scope per
// rendering scope (page or component instance) owning an insertion-ordered,
// content-deduplicated registry of compiled rule text.
package scope

import (
	"maps"
	"strings"

	"go.uber.org/zap"

	"stylec/css"
	"stylec/transform"
)

// DefaultPrefix is used for generated class and animation names when no
// prefix option is given.
const DefaultPrefix = "next"

// Rule key kind tags. A rule key is "<kind>:<identifier>" and is unique per
// distinct compiled rule within one scope.
const (
	kindClass     = "class:"
	kindGlobal    = "global:"
	kindKeyframes = "@keyframes:"
	kindFontFace  = "@font-face:"
)

// Scope compiles style descriptions into named rules and accumulates their
// transformed text. A Scope is confined to a single rendering scope and a
// single goroutine; instances must not be shared across scopes.
type Scope struct {
	prefix string
	tr     transform.Transformer
	log    *zap.Logger

	order   []string          // rule keys in insertion order
	rules   map[string]string // rule key -> transformed rule text
	globals map[string]css.Style
}

// Option configures a Scope during construction.
type Option func(*Scope)

// WithPrefix sets the prefix of generated class and animation names.
func WithPrefix(prefix string) Option {
	return func(s *Scope) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithTransformer sets the rule text transformer. The default is the
// process-wide memoized normalizer.
func WithTransformer(tr transform.Transformer) Option {
	return func(s *Scope) {
		if tr != nil {
			s.tr = tr
		}
	}
}

// WithLogger sets the logger used for operational debug output.
func WithLogger(log *zap.Logger) Option {
	return func(s *Scope) {
		if log != nil {
			s.log = log.Named("scope")
		}
	}
}

// New creates an empty Scope.
func New(opts ...Option) *Scope {
	s := &Scope{
		prefix:  DefaultPrefix,
		tr:      transform.Default(),
		log:     zap.NewNop(),
		rules:   make(map[string]string),
		globals: make(map[string]css.Style),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CSS compiles a style description into a scoped class rule and returns the
// generated class name. The name is a pure function of the description
// content: identical descriptions (regardless of key order) yield the same
// name and are compiled at most once per scope.
func (s *Scope) CSS(st css.Style) string {
	name := s.prefix + "_" + css.Hash(css.Serialize(st))
	key := kindClass + name
	if _, ok := s.rules[key]; ok {
		return name
	}
	s.put(key, s.tr.Transform(css.Compile(st, css.Context{Selector: "." + name})))
	s.log.Debug("class rule compiled", zap.String("class", name))
	return name
}

// Global registers a rule for a raw selector. Repeated calls for the same
// selector merge property-by-property: new top-level keys overwrite old
// ones, missing keys persist, and the whole merged description is
// recompiled in place. Nested state/breakpoint sub-descriptions overwrite
// wholesale, they are not deep-merged.
func (s *Scope) Global(selector string, st css.Style) {
	merged, ok := s.globals[selector]
	if !ok {
		merged = make(css.Style, len(st))
		s.globals[selector] = merged
	}
	maps.Copy(merged, st)

	s.put(kindGlobal+selector, s.tr.Transform(css.Compile(merged, css.Context{Selector: selector})))
	s.log.Debug("global rule registered", zap.String("selector", selector), zap.Bool("merged", ok))
}

// Root registers custom-property declarations on the :root selector.
func (s *Scope) Root(st css.Style) {
	s.Global(":root", st)
}

// Keyframes compiles a keyframe description and returns the generated
// animation name, suitable as an "animation" value. Identical descriptions
// compile at most once per scope.
func (s *Scope) Keyframes(frames css.Keyframes) string {
	token := css.Hash(css.Serialize(frames))
	name := s.prefix + "_" + token
	key := kindKeyframes + token
	if _, ok := s.rules[key]; ok {
		return name
	}
	s.put(key, s.tr.Transform(css.CompileKeyframes(name, frames)))
	s.log.Debug("keyframes compiled", zap.String("animation", name))
	return name
}

// FontFace registers an @font-face rule. Identical declarations compile at
// most once per scope.
func (s *Scope) FontFace(f css.FontFace) {
	key := kindFontFace + css.Hash(css.Serialize(f.Decls()))
	if _, ok := s.rules[key]; ok {
		return
	}
	s.put(key, s.tr.Transform(css.CompileFontFace(f)))
	s.log.Debug("font-face registered", zap.String("family", f.Family))
}

// When starts a relation selector from a class name previously returned by
// CSS. The argument is not validated; arbitrary strings produce
// syntactically valid but semantically wrong selectors.
func (s *Scope) When(class string) Relation {
	return Relation{scope: s, source: class}
}

// CSSText exports all registered rules in insertion order, one
// newline-terminated rule per line. The second return is false when the
// scope holds no rules, so callers can skip emitting a container entirely.
func (s *Scope) CSSText() (string, bool) {
	if len(s.order) == 0 {
		return "", false
	}
	var b strings.Builder
	for _, key := range s.order {
		b.WriteString(s.rules[key])
		b.WriteByte('\n')
	}
	return b.String(), true
}

// put stores rule text under key, keeping the original insertion position
// when the key already exists. Global re-registration replaces content in
// place, which keeps export order deterministic.
func (s *Scope) put(key, text string) {
	if _, ok := s.rules[key]; !ok {
		s.order = append(s.order, key)
	}
	s.rules[key] = text
}
