package css_test

import (
	"strings"
	"testing"

	"stylec/css"
)

func TestCompile_BasicRule(t *testing.T) {
	got := css.Compile(css.Style{"color": "red"}, css.Context{Selector: ".x"})
	want := ".x{color:red}"
	if got != want {
		t.Errorf("Compile() = %s, want %s", got, want)
	}
}

func TestCompile_SortedDeclarations(t *testing.T) {
	got := css.Compile(css.Style{
		"margin":          0,
		"backgroundColor": "#fff",
		"color":           "red",
	}, css.Context{Selector: ".x"})
	want := ".x{background-color:#fff;color:red;margin:0}"
	if got != want {
		t.Errorf("Compile() = %s, want %s", got, want)
	}
}

func TestCompile_CamelCaseConversion(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"backgroundColor", "background-color"},
		{"borderTopLeftRadius", "border-top-left-radius"},
		{"color", "color"},
		{"--accent", "--accent"},
	}
	for _, tc := range tests {
		if got := css.Hyphenate(tc.in); got != tc.want {
			t.Errorf("Hyphenate(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestCompile_CustomPropertyPassthrough(t *testing.T) {
	got := css.Compile(css.Style{"--accent": "#ff0000"}, css.Context{Selector: ":root"})
	want := ":root{--accent:#ff0000}"
	if got != want {
		t.Errorf("Compile() = %s, want %s", got, want)
	}
}

func TestCompile_HoverState(t *testing.T) {
	got := css.Compile(css.Style{
		"color":      "red",
		css.KeyHover: css.Style{"color": "blue"},
	}, css.Context{Selector: ".x"})
	want := ".x{color:red}.x:hover{color:blue}"
	if got != want {
		t.Errorf("Compile() = %s, want %s", got, want)
	}
}

func TestCompile_StateOrderFixed(t *testing.T) {
	// hover, focus, active - regardless of construction order.
	got := css.Compile(css.Style{
		css.KeyActive: css.Style{"color": "green"},
		css.KeyFocus:  css.Style{"color": "blue"},
		css.KeyHover:  css.Style{"color": "red"},
	}, css.Context{Selector: ".x"})
	want := ".x:hover{color:red}.x:focus{color:blue}.x:active{color:green}"
	if got != want {
		t.Errorf("Compile() = %s, want %s", got, want)
	}
}

func TestCompile_BreakpointNesting(t *testing.T) {
	got := css.Compile(css.Style{
		"color":   "red",
		css.KeyMD: css.Style{"color": "blue"},
	}, css.Context{Selector: ".x"})
	want := ".x{color:red}@media (min-width:768px){.x{color:blue}}"
	if got != want {
		t.Errorf("Compile() = %s, want %s", got, want)
	}
}

func TestCompile_StateBreakpointCompose(t *testing.T) {
	got := css.Compile(css.Style{
		css.KeyHover: css.Style{
			css.KeyLG: css.Style{"opacity": 0.5},
		},
	}, css.Context{Selector: ".x"})
	want := "@media (min-width:1024px){.x:hover{opacity:0.5}}"
	if got != want {
		t.Errorf("Compile() = %s, want %s", got, want)
	}
}

func TestCompile_MediaConditionMerge(t *testing.T) {
	got := css.Compile(css.Style{css.KeyMD: css.Style{"color": "blue"}},
		css.Context{Selector: ".x", Media: "(prefers-color-scheme:dark)"})
	want := "@media (prefers-color-scheme:dark) and (min-width:768px){.x{color:blue}}"
	if got != want {
		t.Errorf("Compile() = %s, want %s", got, want)
	}
}

func TestCompile_MalformedValuesSkipped(t *testing.T) {
	got := css.Compile(css.Style{
		"color":  "red",
		"margin": []any{1, 2},           // not a scalar
		"weird":  struct{ X int }{1},    // not a scalar
		"extra":  map[int]string{1: ""}, // not a recognized nested key either
	}, css.Context{Selector: ".x"})
	want := ".x{color:red}"
	if got != want {
		t.Errorf("Compile() = %s, want %s", got, want)
	}
}

func TestCompile_EmptyDescription(t *testing.T) {
	if got := css.Compile(css.Style{}, css.Context{Selector: ".x"}); got != "" {
		t.Errorf("Compile(empty) = %q, want empty", got)
	}
}

func TestCompile_NumericValues(t *testing.T) {
	got := css.Compile(css.Style{"zIndex": 10, "opacity": 0.5, "flexGrow": 1.0},
		css.Context{Selector: ".x"})
	want := ".x{flex-grow:1;opacity:0.5;z-index:10}"
	if got != want {
		t.Errorf("Compile() = %s, want %s", got, want)
	}
}

func TestCompileKeyframes_StepOrder(t *testing.T) {
	got := css.CompileKeyframes("next_spin", css.Keyframes{
		"to":   {"transform": "rotate(360deg)"},
		"50%":  {"opacity": 0.5},
		"9%":   {"opacity": 0.9},
		"from": {"transform": "rotate(0deg)"},
	})
	want := "@keyframes next_spin{from{transform:rotate(0deg)}9%{opacity:0.9}50%{opacity:0.5}to{transform:rotate(360deg)}}"
	if got != want {
		t.Errorf("CompileKeyframes() = %s, want %s", got, want)
	}
}

func TestCompileFontFace(t *testing.T) {
	got := css.CompileFontFace(css.FontFace{
		Family: "Inter",
		Src:    `url("/fonts/inter.woff2") format("woff2")`,
		Weight: "400",
	})
	if !strings.HasPrefix(got, "@font-face{") || !strings.HasSuffix(got, "}") {
		t.Fatalf("CompileFontFace() = %s, want @font-face block", got)
	}
	for _, frag := range []string{"font-family:Inter", `src:url("/fonts/inter.woff2") format("woff2")`, "font-weight:400"} {
		if !strings.Contains(got, frag) {
			t.Errorf("CompileFontFace() = %s, missing %s", got, frag)
		}
	}
	if strings.Contains(got, "font-style") {
		t.Errorf("CompileFontFace() = %s, unexpected font-style for empty field", got)
	}
}
