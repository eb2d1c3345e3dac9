package untyped

import (
	"strconv"
	"testing"

	"golang.org/x/exp/slices"
)

func mustParseTerm(t *testing.T, src string) Term {
	t.Helper()
	term, err := ParseTerm(src)
	if err != nil {
		t.Fatalf("ParseTerm(%q): %v", src, err)
	}
	return term
}

func TestFreeVars(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{"x", []string{"x"}},
		{"λx.x", nil},
		{"λx.x y", []string{"y"}},
		{"λx.λy.x y z", []string{"z"}},
		{"(λx.x) x", []string{"x"}},
		{"f x (g x) y", []string{"f", "g", "x", "y"}},
		{"λx.λx.x", nil},
	}
	for _, tt := range tests {
		got := FreeVars(mustParseTerm(t, tt.src))
		if !slices.Equal(got, tt.want) {
			t.Errorf("FreeVars(%s) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestRename(t *testing.T) {
	got := Rename(mustParseTerm(t, "λx.x (λx.x y)"), "x", "z")
	want := mustParseTerm(t, "λz.z (λz.z y)")
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name  string
		term  string
		v     string
		value string
		want  string
	}{
		{"variable", "x", "x", "λy.y", "λy.y"},
		{"other variable", "y", "x", "z", "y"},
		{"application", "x (y x)", "x", "z", "z (y z)"},
		{"under binder", "λy.x y", "x", "z", "λy.z y"},
		{"shadowed", "λx.x", "x", "z", "λx.x"},
		{"capture", "λx'.x", "x", "x'", "λx''.x'"},
		{"capture avoids body names", "λx'.λx''.x", "x", "x'", "λx'''.λx''.x'"},
		{"capture keeps bound references", "λy.y x", "x", "y", "λy'.y' y"},
		{"inner rebinding renamed", "λy.x (λy.y)", "x", "y", "λy'.y (λy'.y')"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Substitute(mustParseTerm(t, tt.term), tt.v, mustParseTerm(t, tt.value))
			if want := mustParseTerm(t, tt.want); got != want {
				t.Errorf("got %s, want %s", got, want)
			}
		})
	}
}

func TestSubstituteNotFree(t *testing.T) {
	for _, src := range []string{
		"y",
		"λx.x",
		"λy.λz.z y",
		"(λx.x) (λy.y)",
		"λx.λy.x (y w)",
	} {
		term := mustParseTerm(t, src)
		if got := Substitute(term, "x", mustParseTerm(t, "λx.x x")); got != term {
			t.Errorf("Substitute(%s, x, ...) = %s, want it unchanged", src, got)
		}
	}
}

func TestPickFreshName(t *testing.T) {
	if got := pickFreshName([]string{"a", "a'", "a''"}, "a"); got != "a'''" {
		t.Errorf("got %q", got)
	}
	if got := pickFreshName([]string{"b"}, "a"); got != "a" {
		t.Errorf("got %q", got)
	}
}

func TestSubstituteDeep(t *testing.T) {
	const depth = 2000
	var term Term = App{Var{"x"}, Var{"y"}}
	for i := depth; i > 0; i-- {
		term = Abs{"a" + strconv.Itoa(i), term}
	}
	got := Substitute(term, "x", Var{"y"})
	if fv := FreeVars(got); !slices.Equal(fv, []string{"y"}) {
		t.Fatalf("FreeVars = %q, want [y]", fv)
	}
	for i := 1; i <= depth; i++ {
		abs, ok := got.(Abs)
		if !ok || abs.Param != "a"+strconv.Itoa(i) {
			t.Fatalf("binder %d changed: %s", i, got)
		}
		got = abs.Body
	}
	if want := (App{Var{"y"}, Var{"y"}}); got != want {
		t.Errorf("body = %s, want %s", got, want)
	}
}

func TestSubstituteRenamesOnlyWhenNeeded(t *testing.T) {
	// y is free in the value but x does not occur under λy.
	term := mustParseTerm(t, "(λy.y) x")
	got := Substitute(term, "x", Var{"y"})
	if want := mustParseTerm(t, "(λy.y) y"); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
