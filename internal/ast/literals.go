package ast

import (
	"github.com/rouge-lang/rouge/internal/diagnostics"
	"github.com/rouge-lang/rouge/internal/token"
	"github.com/rouge-lang/rouge/internal/values"
)

// NumberLiteral is a Number-typed literal expression.
type NumberLiteral struct {
	base
	Value float64
}

func NewNumberLiteral(rng token.Range, v float64) *NumberLiteral {
	return &NumberLiteral{base: base{Rng: rng}, Value: v}
}

func (l *NumberLiteral) Analyze(values.Env) *diagnostics.Findings   { return &diagnostics.Findings{} }
func (l *NumberLiteral) ResolveType(values.Env) values.Type         { return values.Number }
func (l *NumberLiteral) Evaluate(values.Env) values.Value           { return values.NewNumber(l.Value) }

// StringLiteral is a String-typed literal expression.
type StringLiteral struct {
	base
	Value string
}

func NewStringLiteral(rng token.Range, v string) *StringLiteral {
	return &StringLiteral{base: base{Rng: rng}, Value: v}
}

func (l *StringLiteral) Analyze(values.Env) *diagnostics.Findings { return &diagnostics.Findings{} }
func (l *StringLiteral) ResolveType(values.Env) values.Type       { return values.String }
func (l *StringLiteral) Evaluate(values.Env) values.Value         { return values.NewString(l.Value) }

// BooleanLiteral is a Boolean-typed literal expression.
type BooleanLiteral struct {
	base
	Value bool
}

func NewBooleanLiteral(rng token.Range, v bool) *BooleanLiteral {
	return &BooleanLiteral{base: base{Rng: rng}, Value: v}
}

func (l *BooleanLiteral) Analyze(values.Env) *diagnostics.Findings { return &diagnostics.Findings{} }
func (l *BooleanLiteral) ResolveType(values.Env) values.Type       { return values.Boolean }
func (l *BooleanLiteral) Evaluate(values.Env) values.Value         { return values.NewBoolean(l.Value) }
