// Package ast defines the abstract syntax tree node contracts and node
// kinds spec.md §3–§4 describe. The parser (out of scope per spec §1) is
// treated purely as a producer of these nodes; this package carries no
// parsing logic.
//
// Every expression node implements Analyze/ResolveType/Evaluate/TokenRange;
// every statement node implements Analyze/Interpret/TokenRange (spec §4.2).
package ast

import (
	"github.com/rouge-lang/rouge/internal/diagnostics"
	"github.com/rouge-lang/rouge/internal/token"
	"github.com/rouge-lang/rouge/internal/values"
)

// Expression is any node that produces a value.
type Expression interface {
	Analyze(env values.Env) *diagnostics.Findings
	ResolveType(env values.Env) values.Type
	Evaluate(env values.Env) values.Value
	TokenRange() token.Range
}

// Statement is any node that performs an action but produces no value.
type Statement interface {
	Analyze(env values.Env) *diagnostics.Findings
	Interpret(env values.Env) values.Signal
	TokenRange() token.Range
}

// base is embedded by every node to carry its source range.
type base struct {
	Rng token.Range
}

func (b base) TokenRange() token.Range { return b.Rng }

// Statements is a sequence of statement nodes (spec §4.10). It performs
// no scoping of its own — its containing construct (function body,
// condition branch, loop body, or the top-level program) brackets the
// scope.
type Statements struct {
	base
	Items []Statement
}

// NewStatements builds a Statements node spanning rng.
func NewStatements(rng token.Range, items ...Statement) *Statements {
	return &Statements{base: base{Rng: rng}, Items: items}
}

// Analyze merges every child statement's findings, in order.
func (s *Statements) Analyze(env values.Env) *diagnostics.Findings {
	all := make([]*diagnostics.Findings, 0, len(s.Items))
	for _, item := range s.Items {
		all = append(all, item.Analyze(env))
	}
	return diagnostics.Merge(all...)
}

// Interpret executes children in order, stopping at the first non-None
// signal and propagating it to the caller.
func (s *Statements) Interpret(env values.Env) values.Signal {
	for _, item := range s.Items {
		if sig := item.Interpret(env); !sig.IsNone() {
			return sig
		}
	}
	return values.None
}
