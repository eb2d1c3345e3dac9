package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/WilliamRagstad/lamda-calc/untyped"
)

const separator = "------------------"

// session evaluates input units against one environment.
type session struct {
	ev      *untyped.Evaluator
	out     io.Writer
	palette untyped.Palette
}

func parseUnit(input string) ([]untyped.Stmt, error) {
	return untyped.Parse(strings.TrimSpace(strings.ReplaceAll(input, "\r", "")))
}

// run echoes the statements of input with bound names resolved, evaluates
// them and prints the value of the last one.
func (s *session) run(ctx context.Context, input string) error {
	stmts, err := parseUnit(input)
	if err != nil {
		return err
	}
	if len(stmts) == 0 {
		return untyped.ErrNoTerm
	}
	echo := lo.Map(stmts, func(st untyped.Stmt, _ int) string {
		return s.palette.Format(untyped.Inline(st, s.ev.Env))
	})
	fmt.Fprintln(s.out, strings.Join(echo, "\n"))
	result, err := s.ev.EvalAll(ctx, stmts)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s%s%s\n%s\n\n", s.palette.Punct, separator, s.palette.Reset, s.palette.Format(result))
	return nil
}

// load evaluates a file into the environment without printing anything.
func (s *session) load(ctx context.Context, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	stmts, err := parseUnit(string(src))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if _, err := s.ev.EvalAll(ctx, stmts); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// printEnv lists the bindings in name order.
func (s *session) printEnv() {
	for _, name := range s.ev.Env.Names() {
		v, _ := s.ev.Env.Lookup(name)
		fmt.Fprintln(s.out, s.palette.Format(untyped.Assign{Name: name, Value: v}))
	}
}
