package sheet_test

import (
	"strings"
	"testing"

	"stylec/css"
	"stylec/scope"
	"stylec/sheet"
	"stylec/transform"
)

const sampleDoc = `
name: landing
reset: false
root:
  "--accent": "#ff0066"
globals:
  body:
    margin: 0
    fontFamily: sans-serif
classes:
  card:
    backgroundColor: "#fff"
    padding: 1rem
    _hover:
      boxShadow: 0 2px 8px rgba(0,0,0,.2)
  card-wide:
    _md:
      maxWidth: 40rem
keyframes:
  pulse:
    from:
      opacity: 1
    to:
      opacity: 0.4
font_faces:
  - family: Inter
    src: url("/fonts/inter.woff2") format("woff2")
    weight: "400"
`

func newScope() *scope.Scope {
	return scope.New(scope.WithTransformer(transform.Nop))
}

func TestLoad_Sample(t *testing.T) {
	doc, err := sheet.Load([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.Name != "landing" {
		t.Errorf("Name = %s, want landing", doc.Name)
	}
	if len(doc.Classes) != 2 || len(doc.Keyframes) != 1 || len(doc.FontFaces) != 1 {
		t.Errorf("unexpected document shape: %+v", doc)
	}
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	if _, err := sheet.Load([]byte("clases:\n  card:\n    color: red\n")); err == nil {
		t.Error("Load() accepted a misspelled field")
	}
}

func TestBuild_Sample(t *testing.T) {
	doc, err := sheet.Load([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	res, err := doc.Build(newScope())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	card, ok := res.Classes["card"]
	if !ok || !strings.HasPrefix(card, "next_") {
		t.Fatalf("Classes[card] = %q, want generated next_ name", card)
	}
	pulse, ok := res.Animations["pulse"]
	if !ok || !strings.HasPrefix(pulse, "next_") {
		t.Fatalf("Animations[pulse] = %q, want generated next_ name", pulse)
	}

	for _, frag := range []string{
		":root{--accent:#ff0066}",
		"body{font-family:sans-serif;margin:0}",
		"." + card + ":hover{",
		"@media (min-width:768px){." + res.Classes["card-wide"] + "{max-width:40rem}}",
		"@keyframes " + pulse + "{from{opacity:1}to{opacity:0.4}}",
		"@font-face{",
	} {
		if !strings.Contains(res.CSS, frag) {
			t.Errorf("Build() CSS missing %s:\n%s", frag, res.CSS)
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	doc, err := sheet.Load([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	a, err := doc.Build(newScope())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	b, err := doc.Build(newScope())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if a.CSS != b.CSS {
		t.Errorf("builds differ:\n--- a\n%s\n--- b\n%s", a.CSS, b.CSS)
	}
}

func TestBuild_ResetFirst(t *testing.T) {
	doc := &sheet.Document{
		Reset:   true,
		Classes: map[string]css.Style{"card": {"color": "red"}},
	}
	res, err := doc.Build(newScope())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !strings.Contains(res.CSS, "box-sizing:border-box") {
		t.Errorf("reset rules missing:\n%s", res.CSS)
	}
	if strings.Index(res.CSS, "box-sizing") > strings.Index(res.CSS, res.Classes["card"]) {
		t.Errorf("reset rules not emitted first:\n%s", res.CSS)
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	doc := &sheet.Document{
		Classes:   map[string]css.Style{"0bad": {"color": "red"}, "also bad": {"color": "red"}},
		Keyframes: map[string]css.Keyframes{"-nope": {"from": {"opacity": 0}}},
		FontFaces: []sheet.FontFace{{Family: "Inter"}}, // missing src
	}

	err := doc.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want errors")
	}
	msg := err.Error()
	for _, frag := range []string{`"0bad"`, `"also bad"`, `"-nope"`, "family and src"} {
		if !strings.Contains(msg, frag) {
			t.Errorf("Validate() error %q missing %s", msg, frag)
		}
	}

	if _, err := doc.Build(newScope()); err == nil {
		t.Error("Build() must fail on invalid document")
	}
}
