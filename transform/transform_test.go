package transform_test

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"stylec/transform"
)

func TestNop_Passthrough(t *testing.T) {
	in := ".x{color:red}"
	if got := transform.Nop.Transform(in); got != in {
		t.Errorf("Nop.Transform() = %s, want %s", got, in)
	}
}

func TestMemoized_CallsNextOnce(t *testing.T) {
	var calls atomic.Int64
	m := transform.NewMemoized(transform.Func(func(s string) string {
		calls.Add(1)
		return strings.ToUpper(s)
	}))

	for range 5 {
		if got := m.Transform("abc"); got != "ABC" {
			t.Fatalf("Transform() = %s, want ABC", got)
		}
	}
	if calls.Load() != 1 {
		t.Errorf("wrapped transformer called %d times, want 1", calls.Load())
	}
	if m.Size() != 1 {
		t.Errorf("cache size = %d, want 1", m.Size())
	}
}

func TestMemoized_DistinctInputs(t *testing.T) {
	m := transform.NewMemoized(transform.Nop)
	m.Transform("a")
	m.Transform("b")
	m.Transform("a")
	if m.Size() != 2 {
		t.Errorf("cache size = %d, want 2", m.Size())
	}
}

func TestMemoized_Concurrent(t *testing.T) {
	m := transform.NewMemoized(transform.Func(func(s string) string {
		return s + "!"
	}))

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := range 100 {
				in := fmt.Sprintf("rule-%d", (n+j)%8)
				if got := m.Transform(in); got != in+"!" {
					t.Errorf("Transform(%s) = %s", in, got)
				}
			}
		}(i)
	}
	wg.Wait()

	if m.Size() != 8 {
		t.Errorf("cache size = %d, want 8", m.Size())
	}
}

func TestNormalizer_CompactOutputUnchanged(t *testing.T) {
	// Compiler output is already compact, normalization is idempotent on it.
	in := ".x{background-color:#fff;color:red}"
	if got := (transform.Normalizer{}).Transform(in); got != in {
		t.Errorf("Transform() = %s, want %s", got, in)
	}
}

func TestNormalizer_CollapsesWhitespace(t *testing.T) {
	in := ".a  {\n  color :  red ;\n  margin: 0   auto ;\n}\n"
	got := (transform.Normalizer{}).Transform(in)
	want := ".a{color:red;margin:0 auto}"
	if got != want {
		t.Errorf("Transform() = %s, want %s", got, want)
	}
}

func TestNormalizer_DropsComments(t *testing.T) {
	in := "/* lead */.a{color:red/* tail */}"
	got := (transform.Normalizer{}).Transform(in)
	if strings.Contains(got, "/*") {
		t.Errorf("Transform() = %s, comment not dropped", got)
	}
	if !strings.Contains(got, "color:red") {
		t.Errorf("Transform() = %s, declaration lost", got)
	}
}

func TestNormalizer_MediaBlock(t *testing.T) {
	in := "@media (min-width:768px) { .x { color: blue } }"
	got := (transform.Normalizer{}).Transform(in)
	want := "@media (min-width:768px){.x{color:blue}}"
	if got != want {
		t.Errorf("Transform() = %s, want %s", got, want)
	}
}

func TestDefault_SharedAndMemoized(t *testing.T) {
	if transform.Default() != transform.Default() {
		t.Error("Default() must return the same process-wide transformer")
	}
	a := transform.Default().Transform(".shared{color:red}")
	b := transform.Default().Transform(".shared{color:red}")
	if a != b {
		t.Errorf("Default() not stable: %s vs %s", a, b)
	}
}
