package untyped

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// FreeVars returns the sorted names that occur free in t.
func FreeVars(t Term) []string {
	fv := lo.Uniq(freeVars(t))
	slices.Sort(fv)
	return fv
}

func freeVars(t Term) []string {
	switch t := t.(type) {
	case Var:
		return []string{t.Name}
	case Abs:
		return lo.Without(freeVars(t.Body), t.Param)
	case App:
		return append(freeVars(t.Fn), freeVars(t.Arg)...)
	}
	panic("unreachable")
}

// names returns every name in t, bound or free, including binders.
func names(t Term) []string {
	switch t := t.(type) {
	case Var:
		return []string{t.Name}
	case Abs:
		return append(names(t.Body), t.Param)
	case App:
		return append(names(t.Fn), names(t.Arg)...)
	}
	panic("unreachable")
}

// Rename replaces every occurrence of from in t, references and binders
// alike, with to. It ignores scoping: callers rename the body of the one
// abstraction whose parameter is from.
func Rename(t Term, from, to string) Term {
	switch t := t.(type) {
	case Var:
		if t.Name == from {
			return Var{to}
		}
		return t
	case Abs:
		param := t.Param
		if param == from {
			param = to
		}
		return Abs{param, Rename(t.Body, from, to)}
	case App:
		return App{Rename(t.Fn, from, to), Rename(t.Arg, from, to)}
	}
	panic("unreachable")
}

// Substitute replaces the free occurrences of name in t with value,
// renaming binders of t that would capture a free variable of value.
func Substitute(t Term, name string, value Term) Term {
	return substAll(t, map[string]Term{name: value})
}

func pickFreshName(avoid []string, s string) string {
	if slices.Contains(avoid, s) {
		return pickFreshName(avoid, s+"'")
	}
	return s
}

// substAll substitutes every name in s simultaneously.
func substAll(t Term, s map[string]Term) Term {
	if len(s) == 0 {
		return t
	}
	return subst(t, s, capturable(s))
}

// capturable returns the names a binder must not take while s is applied.
func capturable(s map[string]Term) []string {
	return lo.FlatMap(lo.Values(s), func(v Term, _ int) []string { return freeVars(v) })
}

// subst applies s to t. captured holds at least the free variables of the
// values in s, so free variables are only recomputed below a binder that
// could capture one of them.
func subst(t Term, s map[string]Term, captured []string) Term {
	switch t := t.(type) {
	case Var:
		if v, ok := s[t.Name]; ok {
			return v
		}
		return t
	case Abs:
		if _, ok := s[t.Param]; ok {
			s = lo.OmitByKeys(s, []string{t.Param})
			if len(s) == 0 {
				return t
			}
		}
		if !slices.Contains(captured, t.Param) {
			return Abs{t.Param, subst(t.Body, s, captured)}
		}
		// Rename only when a name that is actually replaced occurs free here.
		s = lo.PickByKeys(s, FreeVars(t))
		if len(s) == 0 {
			return t
		}
		captured = capturable(s)
		if !slices.Contains(captured, t.Param) {
			return Abs{t.Param, subst(t.Body, s, captured)}
		}
		avoid := append(append(captured, names(t.Body)...), lo.Keys(s)...)
		fresh := pickFreshName(avoid, t.Param)
		return Abs{fresh, subst(Rename(t.Body, t.Param, fresh), s, captured)}
	case App:
		return App{subst(t.Fn, s, captured), subst(t.Arg, s, captured)}
	}
	panic("unreachable")
}
