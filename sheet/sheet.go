// Package sheet builds complete style sheets from declarative documents.
// A document names classes and keyframes, lists global rules and font
// faces, and is compiled through a single scope into CSS text plus a
// mapping from document names to generated identifiers.
package sheet

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"stylec/css"
	"stylec/scope"
)

// Document is a declarative description of one style sheet.
type Document struct {
	Name      string                   `yaml:"name,omitempty"`
	Reset     bool                     `yaml:"reset,omitempty"`
	Root      css.Style                `yaml:"root,omitempty"`
	Globals   map[string]css.Style     `yaml:"globals,omitempty"`
	Classes   map[string]css.Style     `yaml:"classes,omitempty"`
	Keyframes map[string]css.Keyframes `yaml:"keyframes,omitempty"`
	FontFaces []FontFace               `yaml:"font_faces,omitempty"`
}

// FontFace is the document form of a font-face declaration.
type FontFace struct {
	Family       string `yaml:"family"`
	Src          string `yaml:"src"`
	Weight       string `yaml:"weight,omitempty"`
	Style        string `yaml:"style,omitempty"`
	Display      string `yaml:"display,omitempty"`
	UnicodeRange string `yaml:"unicode_range,omitempty"`
}

func (f FontFace) fontFace() css.FontFace {
	return css.FontFace{
		Family:       f.Family,
		Src:          f.Src,
		Weight:       f.Weight,
		Style:        f.Style,
		Display:      f.Display,
		UnicodeRange: f.UnicodeRange,
	}
}

// Result maps document names to generated identifiers plus the exported
// style text.
type Result struct {
	Classes    map[string]string
	Animations map[string]string
	CSS        string
}

// Load decodes a YAML document. Unknown fields are rejected to catch typos
// in hand-written documents early.
func Load(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode style document: %w", err)
	}
	return &doc, nil
}

// nameRe matches usable class and animation document names.
var nameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Validate checks document names and required font-face fields, reporting
// every problem at once.
func (d *Document) Validate() (err error) {
	for _, name := range sortedKeys(d.Classes) {
		if !nameRe.MatchString(name) {
			err = multierr.Append(err, fmt.Errorf("invalid class name %q", name))
		}
	}
	for _, name := range sortedKeys(d.Keyframes) {
		if !nameRe.MatchString(name) {
			err = multierr.Append(err, fmt.Errorf("invalid keyframes name %q", name))
		}
	}
	for i, f := range d.FontFaces {
		if f.Family == "" || f.Src == "" {
			err = multierr.Append(err, fmt.Errorf("font face #%d: family and src are required", i+1))
		}
	}
	return err
}

// Build compiles the document through s. Build order is fixed: reset,
// root, globals, classes, keyframes, font faces, each group in natural
// sort order of its document names so that generated output is stable.
func (d *Document) Build(s *scope.Scope) (*Result, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	if d.Reset {
		s.Reset()
	}
	if len(d.Root) > 0 {
		s.Root(d.Root)
	}
	for _, selector := range sortedKeys(d.Globals) {
		s.Global(selector, d.Globals[selector])
	}

	res := &Result{
		Classes:    make(map[string]string, len(d.Classes)),
		Animations: make(map[string]string, len(d.Keyframes)),
	}
	for _, name := range sortedKeys(d.Classes) {
		res.Classes[name] = s.CSS(d.Classes[name])
	}
	for _, name := range sortedKeys(d.Keyframes) {
		res.Animations[name] = s.Keyframes(d.Keyframes[name])
	}
	for _, f := range d.FontFaces {
		s.FontFace(f.fontFace())
	}

	res.CSS, _ = s.CSSText()
	return res, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return natural.Less(keys[i], keys[j]) })
	return keys
}
