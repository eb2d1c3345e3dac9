package untyped

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"x", "x"},
		{"λx.x", "λx.x"},
		{"λx.λy.x", "λx.λy.x"},
		{"λx.x y", "λx.(x y)"},
		{"f x", "(f x)"},
		{"f x y", "((f x) y)"},
		{"f (g x)", "(f (g x))"},
		{"(λx.x) y", "((λx.x) y)"},
		{"λf.λx.f (f x)", "λf.λx.(f (f x))"},
		{"(λf.λx.f (f x)) (λy.y) z", "(((λf.λx.(f (f x))) (λy.y)) z)"},
		{"id = λx.x", "id = λx.x;"},
		{"k = f x", "k = f x;"},
	}
	for _, tt := range tests {
		stmts := mustParse(t, tt.src)
		if got := Format(stmts[0]); got != tt.want {
			t.Errorf("Format(%s) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, src := range []string{
		"λx.λy.x y (λz.z)",
		"f (λx.x) g",
		"(λx'.x) (λx''.x' x'')",
	} {
		term := mustParseTerm(t, src)
		if got := mustParseTerm(t, Format(term)); got != term {
			t.Errorf("%s: reparsed as %s", src, got)
		}
	}
}

func TestPaletteFormat(t *testing.T) {
	got := ANSI.Format(mustParseTerm(t, "f λx.x"))
	want := "\x1b[90m(\x1b[0mf \x1b[90m(\x1b[0m\x1b[33mλ\x1b[0mx\x1b[90m.\x1b[0mx\x1b[90m)\x1b[0m\x1b[90m)\x1b[0m"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
