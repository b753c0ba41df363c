// Package css compiles nested declarative style descriptions into flat CSS
// rule text. A description is a plain map from property names to scalar
// values, optionally nested under reserved pseudo-state and breakpoint keys.
package css

// Reserved nested keys. Breakpoint keys must not nest inside breakpoint
// keys; state keys may contain breakpoint keys but not further state keys.
const (
	KeyHover  = "_hover"
	KeyFocus  = "_focus"
	KeyActive = "_active"

	KeySM  = "_sm"
	KeyMD  = "_md"
	KeyLG  = "_lg"
	KeyXL  = "_xl"
	KeyXXL = "_xxl"
)

// Check order matters for output text ordering only, not semantics.
var (
	stateKeys      = [...]string{KeyHover, KeyFocus, KeyActive}
	breakpointKeys = [...]string{KeySM, KeyMD, KeyLG, KeyXL, KeyXXL}
)

// breakpointCond maps a breakpoint key to its fixed media condition.
var breakpointCond = map[string]string{
	KeySM:  "(min-width:640px)",
	KeyMD:  "(min-width:768px)",
	KeyLG:  "(min-width:1024px)",
	KeyXL:  "(min-width:1280px)",
	KeyXXL: "(min-width:1536px)",
}

// Style is a nested style description: property name to scalar value, plus
// reserved keys holding nested descriptions. Property names use camelCase
// and are converted to hyphenated form on emission; custom properties
// ("--accent") pass through unchanged.
type Style map[string]any

// Keyframes maps a step label ("from", "to" or a percentage like "30%") to
// a scalar-only style. Nested state/breakpoint keys are not meaningful
// inside keyframe steps and are dropped like any other malformed value.
type Keyframes map[string]Style

// FontFace describes a single @font-face declaration. Family and Src are
// required, the rest is optional. Values are passed through verbatim.
type FontFace struct {
	Family       string
	Src          string
	Weight       string
	Style        string
	Display      string
	UnicodeRange string
}

// Decls returns the font-face fields as a style description, used both as
// hash input and as compile input.
func (f FontFace) Decls() Style {
	st := Style{
		"fontFamily": f.Family,
		"src":        f.Src,
	}
	if f.Weight != "" {
		st["fontWeight"] = f.Weight
	}
	if f.Style != "" {
		st["fontStyle"] = f.Style
	}
	if f.Display != "" {
		st["fontDisplay"] = f.Display
	}
	if f.UnicodeRange != "" {
		st["unicodeRange"] = f.UnicodeRange
	}
	return st
}

// IsStateKey reports whether key is one of the reserved pseudo-state keys.
func IsStateKey(key string) bool {
	switch key {
	case KeyHover, KeyFocus, KeyActive:
		return true
	}
	return false
}

// IsBreakpointKey reports whether key is one of the reserved breakpoint keys.
func IsBreakpointKey(key string) bool {
	_, ok := breakpointCond[key]
	return ok
}

// nested coerces a reserved key's value to a Style. YAML and JSON decoding
// produce map[string]any, direct construction produces Style - accept both.
func nested(v any) (Style, bool) {
	switch t := v.(type) {
	case Style:
		return t, true
	case map[string]any:
		return Style(t), true
	}
	return nil, false
}
