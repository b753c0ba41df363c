package css

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/maruel/natural"
)

// Context carries the selector scope a style description is compiled under.
// Media, when set, wraps the emitted rule in an @media block.
type Context struct {
	Selector string
	Media    string
}

// Compile recursively expands a style description into flat CSS rule text.
// Scalar declarations become one rule under ctx.Selector; pseudo-state keys
// recurse with the selector extended by ":state"; breakpoint keys recurse
// with the breakpoint condition merged into the current media condition.
// Recursion depth is bounded by the state-then-breakpoint nesting the data
// model allows.
//
// Values that are neither scalars nor recognized nested descriptions are
// silently dropped - a dropped declaration is preferable to a failed render.
func Compile(st Style, ctx Context) string {
	var b strings.Builder
	compileInto(&b, st, ctx)
	return b.String()
}

func compileInto(b *strings.Builder, st Style, ctx Context) {
	decls := make([]string, 0, len(st))
	for key, v := range st {
		if IsStateKey(key) || IsBreakpointKey(key) {
			continue
		}
		text, ok := scalarText(v)
		if !ok {
			continue
		}
		decls = append(decls, Hyphenate(key)+":"+text)
	}

	if len(decls) > 0 {
		// Emission order inside a rule is sorted for deterministic output.
		sort.Strings(decls)
		if ctx.Media != "" {
			b.WriteString("@media ")
			b.WriteString(ctx.Media)
			b.WriteByte('{')
		}
		b.WriteString(ctx.Selector)
		b.WriteByte('{')
		for i, d := range decls {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(d)
		}
		b.WriteByte('}')
		if ctx.Media != "" {
			b.WriteByte('}')
		}
	}

	for _, key := range stateKeys {
		sub, ok := nested(st[key])
		if !ok {
			continue
		}
		compileInto(b, sub, Context{
			Selector: ctx.Selector + ":" + strings.TrimPrefix(key, "_"),
			Media:    ctx.Media,
		})
	}

	for _, key := range breakpointKeys {
		sub, ok := nested(st[key])
		if !ok {
			continue
		}
		media := breakpointCond[key]
		if ctx.Media != "" {
			// A state-nested breakpoint compiles to one rule scoped by
			// both conditions.
			media = ctx.Media + " and " + media
		}
		compileInto(b, sub, Context{Selector: ctx.Selector, Media: media})
	}
}

// CompileKeyframes expands keyframe steps into one @keyframes block under
// the given animation name. Steps are emitted "from" first, "to" last, with
// percentage labels in natural ascending order in between.
func CompileKeyframes(name string, frames Keyframes) string {
	labels := make([]string, 0, len(frames))
	for label := range frames {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return frameLabelLess(labels[i], labels[j])
	})

	var b strings.Builder
	b.WriteString("@keyframes ")
	b.WriteString(name)
	b.WriteByte('{')
	for _, label := range labels {
		compileInto(&b, frames[label], Context{Selector: label})
	}
	b.WriteByte('}')
	return b.String()
}

func frameLabelLess(a, b string) bool {
	ra, rb := frameLabelRank(a), frameLabelRank(b)
	if ra != rb {
		return ra < rb
	}
	return natural.Less(a, b)
}

func frameLabelRank(label string) int {
	switch label {
	case "from":
		return 0
	case "to":
		return 2
	}
	return 1
}

// CompileFontFace expands a font-face declaration into one @font-face block.
func CompileFontFace(f FontFace) string {
	var b strings.Builder
	b.WriteString("@font-face")
	compileInto(&b, f.Decls(), Context{})
	return b.String()
}

// Hyphenate converts a camelCase property name to hyphenated form: every
// uppercase letter is replaced by a hyphen followed by its lowercase form.
// The mapping is purely mechanical; custom properties ("--accent") contain
// no uppercase letters and pass through unchanged.
func Hyphenate(name string) string {
	if !strings.ContainsFunc(name, unicode.IsUpper) {
		return name
	}
	var b strings.Builder
	b.Grow(len(name) + 2)
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// scalarText renders a scalar declaration value. Anything else reports false
// and is skipped by the compiler.
func scalarText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	}
	return "", false
}
