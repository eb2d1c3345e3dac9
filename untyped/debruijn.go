package untyped

import (
	"strconv"

	"golang.org/x/exp/slices"
)

func prepend(v string, from []string) []string {
	return append([]string{v}, from...)
}

// DeBruijnString renders t in nameless notation: bound variables become the
// number of binders between them and their abstraction, free variables keep
// their names behind a '#'.
func DeBruijnString(t Term) string {
	return deBruijnString(t, nil)
}

func deBruijnString(t Term, ctx []string) string {
	switch t := t.(type) {
	case Var:
		if i := slices.Index(ctx, t.Name); i >= 0 {
			return strconv.Itoa(i)
		}
		return "#" + t.Name
	case Abs:
		return "(λ." + deBruijnString(t.Body, prepend(t.Param, ctx)) + ")"
	case App:
		return "(" + deBruijnString(t.Fn, ctx) + " " + deBruijnString(t.Arg, ctx) + ")"
	}
	panic("unreachable")
}

// AlphaEqual reports whether a and b differ only in the names of bound
// variables. Normalize compares terms syntactically; this is the looser
// equality for callers that do not care about binder names.
func AlphaEqual(a, b Term) bool {
	return DeBruijnString(a) == DeBruijnString(b)
}
