package untyped

import (
	"context"
	"fmt"
)

var noRuleApplies = fmt.Errorf("no rule applies")

// ErrStepLimit is returned by NormalizeBounded when the step budget runs out
// before a normal form is reached.
var ErrStepLimit = fmt.Errorf("step limit reached")

// eval1 performs one leftmost-outermost beta reduction. A redex in head
// position fires before its argument is reduced.
func eval1(t Term) (Term, error) {
	switch t := t.(type) {
	case Var:
		return nil, noRuleApplies
	case Abs:
		body, err := eval1(t.Body)
		if err != nil {
			return nil, err
		}
		return Abs{t.Param, body}, nil
	case App:
		if abs, ok := t.Fn.(Abs); ok {
			return Substitute(abs.Body, abs.Param, t.Arg), nil
		}
		if fn, err := eval1(t.Fn); err == nil {
			return App{fn, t.Arg}, nil
		}
		arg, err := eval1(t.Arg)
		if err != nil {
			return nil, err
		}
		return App{t.Fn, arg}, nil
	}
	panic("unreachable")
}

// Step reduces t by exactly one step. A term in normal form is returned
// unchanged.
func Step(t Term) Term {
	t1, err := eval1(t)
	if err != nil {
		return t
	}
	return t1
}

// Normalize reduces t until it no longer changes. It never returns for a
// term without a normal form.
func Normalize(t Term) Term {
	for {
		t1, err := eval1(t)
		if err != nil {
			return t
		}
		t = t1
	}
}

// NormalizeBounded is Normalize with a way out: it gives up with
// ErrStepLimit after maxSteps reductions, or with the context's error once
// ctx is done. maxSteps <= 0 means no limit. The partially reduced term is
// returned alongside any error.
func NormalizeBounded(ctx context.Context, t Term, maxSteps int) (Term, error) {
	for steps := 0; ; steps++ {
		if err := ctx.Err(); err != nil {
			return t, err
		}
		t1, err := eval1(t)
		if err != nil {
			return t, nil
		}
		if maxSteps > 0 && steps == maxSteps {
			return t, fmt.Errorf("%w after %d steps", ErrStepLimit, steps)
		}
		t = t1
	}
}
