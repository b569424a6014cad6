package ast

import (
	"github.com/rouge-lang/rouge/internal/diagnostics"
	"github.com/rouge-lang/rouge/internal/token"
	"github.com/rouge-lang/rouge/internal/values"
)

// ExpressionStatement runs an expression for its side effects, discarding
// its value (e.g. a bare invocation used as a statement).
type ExpressionStatement struct {
	base
	Expr Expression
}

func NewExpressionStatement(rng token.Range, expr Expression) *ExpressionStatement {
	return &ExpressionStatement{base: base{Rng: rng}, Expr: expr}
}

func (e *ExpressionStatement) Analyze(env values.Env) *diagnostics.Findings {
	return e.Expr.Analyze(env)
}

func (e *ExpressionStatement) Interpret(env values.Env) values.Signal {
	e.Expr.Evaluate(env)
	return values.None
}
