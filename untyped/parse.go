package untyped

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// ErrIncomplete is wrapped by parse errors caused by input ending too early.
var ErrIncomplete = fmt.Errorf("unexpected end of input")

func unexpected(s string) error {
	return fmt.Errorf("unexpected token %q", s)
}

func isIdent(s string) bool {
	return s != "" && strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '\''
	}) < 0
}

func validateToken(s string) error {
	switch s {
	case "(", ")", "λ", "\\", ".", "=", ";":
		return nil
	}
	if !isIdent(s) {
		return unexpected(s)
	}
	return nil
}

func stripComments(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i], _, _ = strings.Cut(line, "#")
	}
	return strings.Join(lines, "\n")
}

func scan(s string) (res []string, err error) {
	res = strings.Fields(stripComments(s))
	sep := func(c string) []string {
		return lo.FlatMap(res, func(s string, _ int) (ret []string) {
			for {
				before, after, found := strings.Cut(s, c)
				if before != "" {
					ret = append(ret, before)
				}
				s = after
				if !found {
					break
				}
				ret = append(ret, c)
			}
			return ret
		})
	}
	for _, c := range []string{"(", ")", ".", "λ", "\\", "=", ";"} {
		res = sep(c)
	}
	for _, s := range res {
		if err := validateToken(s); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func expect(tok string, tokens []string) ([]string, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("expected token %q: %w", tok, ErrIncomplete)
	}
	hd, tl := tokens[0], tokens[1:]
	if hd != tok {
		return nil, fmt.Errorf("expected token %q, got %q", tok, hd)
	}
	return tl, nil
}

// Parse reads a program: statements separated by semicolons, where a
// statement is either a term or an assignment "name = term".
func Parse(src string) ([]Stmt, error) {
	tokens, err := scan(src)
	if err != nil {
		return nil, err
	}
	var stmts []Stmt
	for len(tokens) > 0 {
		if tokens[0] == ";" {
			tokens = tokens[1:]
			continue
		}
		var s Stmt
		if s, tokens, err = parseStmt(tokens); err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
		if len(tokens) > 0 {
			if tokens, err = expect(";", tokens); err != nil {
				return nil, err
			}
		}
	}
	return stmts, nil
}

// ParseTerm reads a single term.
func ParseTerm(src string) (Term, error) {
	tokens, err := scan(src)
	if err != nil {
		return nil, err
	}
	t, tokens, err := parse(tokens)
	if err != nil {
		return nil, err
	}
	if len(tokens) != 0 {
		return nil, fmt.Errorf("expected token \"EOF\", got %q", tokens[0])
	}
	return t, nil
}

func parseStmt(tokens []string) (Stmt, []string, error) {
	if len(tokens) >= 2 && tokens[1] == "=" {
		name := tokens[0]
		if !isIdent(name) {
			return nil, nil, unexpected(name)
		}
		value, tokens, err := parse(tokens[2:])
		if err != nil {
			return nil, nil, err
		}
		return Assign{name, value}, tokens, nil
	}
	return parse(tokens)
}

func parseLambda(tokens []string) (Term, []string, error) {
	var params []string
	for len(tokens) > 0 && isIdent(tokens[0]) {
		params = append(params, tokens[0])
		tokens = tokens[1:]
	}
	if len(params) == 0 {
		if len(tokens) == 0 {
			return nil, nil, fmt.Errorf("expected identifier: %w", ErrIncomplete)
		}
		return nil, nil, fmt.Errorf("expected identifier, got %q", tokens[0])
	}
	tokens, err := expect(".", tokens)
	if err != nil {
		return nil, nil, err
	}
	body, tokens, err := parse(tokens)
	if err != nil {
		return nil, nil, err
	}
	for i := len(params) - 1; i >= 0; i-- {
		body = Abs{params[i], body}
	}
	return body, tokens, nil
}

func parseParenExpr(tokens []string) (Term, []string, error) {
	t, tokens, err := parse(tokens)
	if err != nil {
		return nil, nil, err
	}
	tokens, err = expect(")", tokens)
	return t, tokens, err
}

func parseSingle(tokens []string) (Term, []string, error) {
	if len(tokens) == 0 {
		return nil, nil, fmt.Errorf("expected term: %w", ErrIncomplete)
	}
	tok, tokens := tokens[0], tokens[1:]
	switch tok {
	case ")", ".", "=", ";":
		return nil, nil, unexpected(tok)
	case "(":
		return parseParenExpr(tokens)
	case "λ", "\\":
		return parseLambda(tokens)
	}
	return Var{tok}, tokens, nil
}

// parse reads an application chain. A lambda extends as far right as
// possible, so it always ends the chain it appears in.
func parse(tokens []string) (Term, []string, error) {
	a, tokens, err := parseSingle(tokens)
	if err != nil {
		return nil, nil, err
	}
	for len(tokens) > 0 && tokens[0] != ")" && tokens[0] != ";" {
		var b Term
		if b, tokens, err = parseSingle(tokens); err != nil {
			return nil, nil, err
		}
		a = App{a, b}
	}
	return a, tokens, nil
}
