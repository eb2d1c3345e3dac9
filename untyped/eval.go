package untyped

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

var (
	ErrNoTerm      = fmt.Errorf("no term found")
	ErrNotFunction = fmt.Errorf("expected a function")
)

// Env maps names bound by top-level assignments to their normal forms.
type Env map[string]Term

func (e Env) Lookup(name string) (Term, bool) {
	t, ok := e[name]
	return t, ok
}

// Define binds name to t, replacing any earlier binding.
func (e Env) Define(name string, t Term) {
	e[name] = t
}

func (e Env) restore(saved map[string]Term) {
	clear(e)
	for name, t := range saved {
		e[name] = t
	}
}

// Names returns the bound names in sorted order.
func (e Env) Names() []string {
	keys := lo.Keys(e)
	slices.Sort(keys)
	return keys
}

// Inline replaces the free references in s that are bound in env with their
// values. env is not modified.
func Inline(s Stmt, env Env) Stmt {
	switch s := s.(type) {
	case Assign:
		return Assign{s.Name, inline(s.Value, env)}
	case Term:
		return inline(s, env)
	}
	panic("unreachable")
}

func inline(t Term, env Env) Term {
	if len(env) == 0 {
		return t
	}
	return substAll(t, env)
}

// Evaluator evaluates statements against an environment that persists
// between calls. It is not safe for concurrent use.
type Evaluator struct {
	Env Env
	// MaxSteps bounds the reductions of a single statement; 0 means no limit.
	MaxSteps int
}

func NewEvaluator() *Evaluator {
	return &Evaluator{Env: Env{}}
}

// Eval inlines s against the environment and reduces it to normal form.
// An Assign additionally binds its normal form to its name.
func (ev *Evaluator) Eval(ctx context.Context, s Stmt) (Term, error) {
	switch s := Inline(s, ev.Env).(type) {
	case Assign:
		v, err := ev.normalize(ctx, s.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name, err)
		}
		ev.Env.Define(s.Name, v)
		return v, nil
	case Term:
		return ev.normalize(ctx, s)
	}
	panic("unreachable")
}

// EvalAll evaluates stmts in order and returns the value of the last one.
// Assignments are visible to the statements that follow them. If any
// statement fails, the environment is restored to its state before the call.
func (ev *Evaluator) EvalAll(ctx context.Context, stmts []Stmt) (Term, error) {
	if len(stmts) == 0 {
		return nil, ErrNoTerm
	}
	saved := lo.Assign(ev.Env)
	var result Term
	for _, s := range stmts {
		var err error
		if result, err = ev.Eval(ctx, s); err != nil {
			ev.Env.restore(saved)
			return nil, err
		}
	}
	return result, nil
}

func (ev *Evaluator) normalize(ctx context.Context, t Term) (Term, error) {
	v, err := NormalizeBounded(ctx, t, ev.MaxSteps)
	if err != nil {
		return nil, err
	}
	// A normal form that is still an application is stuck on a head that
	// never became an abstraction.
	if app, ok := v.(App); ok {
		return nil, fmt.Errorf("%w, found %s", ErrNotFunction, Format(head(app)))
	}
	return v, nil
}

func head(t Term) Term {
	for {
		app, ok := t.(App)
		if !ok {
			return t
		}
		t = app.Fn
	}
}
