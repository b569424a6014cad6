package ast

import (
	"github.com/rouge-lang/rouge/internal/diagnostics"
	"github.com/rouge-lang/rouge/internal/token"
	"github.com/rouge-lang/rouge/internal/values"
)

// Condition is an if/else statement (spec §4.6). FalseStmts is nil when
// there is no else branch.
type Condition struct {
	base
	Cond       Expression
	TrueStmts  *Statements
	FalseStmts *Statements
}

func NewCondition(rng token.Range, cond Expression, trueStmts, falseStmts *Statements) *Condition {
	return &Condition{base: base{Rng: rng}, Cond: cond, TrueStmts: trueStmts, FalseStmts: falseStmts}
}

func (c *Condition) Analyze(env values.Env) *diagnostics.Findings {
	findings := c.Cond.Analyze(env)
	findings = diagnostics.Merge(findings, c.TrueStmts.Analyze(env))
	if c.FalseStmts != nil {
		findings = diagnostics.Merge(findings, c.FalseStmts.Analyze(env))
	}
	if !findings.IsErroneous() && c.Cond.ResolveType(env) != values.Boolean {
		findings.AddError("condition needs to evaluate to a boolean", c.Cond.TokenRange())
	}
	return findings
}

func (c *Condition) Interpret(env values.Env) values.Signal {
	cond := c.Cond.Evaluate(env)
	b, ok := cond.(*values.BooleanValue)
	if !ok {
		values.Fail("condition did not evaluate to a Boolean value")
	}
	if b.Value {
		return interpretBranch(env, c.TrueStmts)
	}
	if c.FalseStmts != nil {
		return interpretBranch(env, c.FalseStmts)
	}
	return values.None
}

// interpretBranch runs stmts in its own fresh runtime scope, pushed
// before and popped after, even when a signal or panic propagates
// through it (spec §4.6 "popped after, even if an exception propagates").
func interpretBranch(env values.Env, stmts *Statements) values.Signal {
	env.PushRuntimeScope()
	defer env.PopRuntimeScope()
	return stmts.Interpret(env)
}

// Loop is a while-style loop (spec §4.7).
type Loop struct {
	base
	Cond Expression
	Body *Statements
}

func NewLoop(rng token.Range, cond Expression, body *Statements) *Loop {
	return &Loop{base: base{Rng: rng}, Cond: cond, Body: body}
}

func (l *Loop) Analyze(env values.Env) *diagnostics.Findings {
	env.PushAnalysisScope()
	env.PushTypeScope(true)
	findings := l.Cond.Analyze(env)
	findings = diagnostics.Merge(findings, l.Body.Analyze(env))
	env.PopTypeScope()
	env.PopAnalysisScope()

	if !findings.IsErroneous() && l.Cond.ResolveType(env) != values.Boolean {
		findings.AddError("loop condition needs to evaluate to a boolean", l.Cond.TokenRange())
	}
	return findings
}

func (l *Loop) Interpret(env values.Env) values.Signal {
	env.PushRuntimeScope()
	defer env.PopRuntimeScope()

	for {
		cond := l.Cond.Evaluate(env)
		b, ok := cond.(*values.BooleanValue)
		if !ok {
			values.Fail("loop condition did not evaluate to a Boolean value")
		}
		if !b.Value {
			return values.None
		}

		sig := interpretIteration(env, l.Body)
		switch sig.Kind {
		case values.SignalContinue:
			continue
		case values.SignalBreak:
			return values.None
		case values.SignalNone:
			continue
		default:
			return sig
		}
	}
}

func interpretIteration(env values.Env, body *Statements) values.Signal {
	env.PushRuntimeScope()
	defer env.PopRuntimeScope()
	return body.Interpret(env)
}

// ControlFlowModifierKind distinguishes break from continue.
type ControlFlowModifierKind int

const (
	Break ControlFlowModifierKind = iota
	Continue
)

// ControlFlowModifier is a bare break or continue statement (spec §4.7).
type ControlFlowModifier struct {
	base
	Kind ControlFlowModifierKind
}

func NewControlFlowModifier(rng token.Range, kind ControlFlowModifierKind) *ControlFlowModifier {
	return &ControlFlowModifier{base: base{Rng: rng}, Kind: kind}
}

func (m *ControlFlowModifier) Analyze(env values.Env) *diagnostics.Findings {
	findings := &diagnostics.Findings{}
	if !env.InLoop() {
		word := "break"
		if m.Kind == Continue {
			word = "continue"
		}
		findings.AddError("'"+word+"' may only appear inside a loop", m.Rng)
	}
	return findings
}

func (m *ControlFlowModifier) Interpret(values.Env) values.Signal {
	if m.Kind == Break {
		return values.Break()
	}
	return values.Continue()
}
