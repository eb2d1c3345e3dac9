// Package untyped implements the untyped lambda calculus with top-level
// assignments: capture-avoiding substitution, normal order reduction to
// normal form and a persistent environment of named values.
package untyped

// Stmt is a top-level statement: either a Term or an Assign.
type Stmt interface {
	isStmt()
}

// Term is a reducible lambda term. Var, Abs and App are the only
// implementations; values are immutable and == compares them structurally.
type Term interface {
	Stmt
	isTerm()
}

type Var struct {
	Name string
}

func (Var) isStmt() {}
func (Var) isTerm() {}

type Abs struct {
	Param string
	Body  Term
}

func (Abs) isStmt() {}
func (Abs) isTerm() {}

type App struct {
	Fn  Term
	Arg Term
}

func (App) isStmt() {}
func (App) isTerm() {}

// Assign binds the normal form of Value to Name in the environment.
// It is not a Term, so it can only appear at the top level.
type Assign struct {
	Name  string
	Value Term
}

func (Assign) isStmt() {}

func (v Var) String() string    { return Format(v) }
func (a Abs) String() string    { return Format(a) }
func (a App) String() string    { return Format(a) }
func (a Assign) String() string { return Format(a) }
