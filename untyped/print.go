package untyped

// Palette holds the escape sequences used to highlight printed terms.
type Palette struct {
	Punct  string
	Lambda string
	Reset  string
}

var (
	Plain = Palette{}
	ANSI  = Palette{Punct: "\x1b[90m", Lambda: "\x1b[33m", Reset: "\x1b[0m"}
)

// Format renders s without color.
func Format(s Stmt) string {
	return Plain.Format(s)
}

// Format renders s in concrete syntax. Applications parenthesize every
// operand that is not a variable, abstraction bodies are parenthesized
// when they are applications, and a top-level application is wrapped in
// one more pair of parentheses.
func (p Palette) Format(s Stmt) string {
	switch s := s.(type) {
	case Assign:
		return s.Name + p.punct(" = ") + p.term(s.Value, false) + p.punct(";")
	case Term:
		return p.term(s, true)
	}
	panic("unreachable")
}

func (p Palette) term(t Term, top bool) string {
	switch t := t.(type) {
	case Var:
		return t.Name
	case Abs:
		body := p.term(t.Body, false)
		if _, ok := t.Body.(App); ok {
			body = p.paren(body)
		}
		return p.Lambda + "λ" + p.Reset + t.Param + p.punct(".") + body
	case App:
		s := p.operand(t.Fn) + " " + p.operand(t.Arg)
		if top {
			return p.paren(s)
		}
		return s
	}
	panic("unreachable")
}

func (p Palette) operand(t Term) string {
	if v, ok := t.(Var); ok {
		return v.Name
	}
	return p.paren(p.term(t, false))
}

func (p Palette) punct(s string) string {
	return p.Punct + s + p.Reset
}

func (p Palette) paren(s string) string {
	return p.punct("(") + s + p.punct(")")
}
