package ast

import (
	"github.com/rouge-lang/rouge/internal/diagnostics"
	"github.com/rouge-lang/rouge/internal/token"
	"github.com/rouge-lang/rouge/internal/values"
)

// TypeAnnotation names a static type at a use site: a bare primitive
// name ("Boolean", "Number", "String"), a previously-declared composite
// or placeholder name, or a composite name applied to a bracketed list
// of type arguments that bind that type's placeholders (spec §4.9
// "TypeLiteral").
type TypeAnnotation struct {
	base
	Name      string
	TypeArgs  []*TypeAnnotation // bracketed [T1, T2, ...]; nil when absent
	resolved  values.Type
}

// NewTypeAnnotation builds a TypeAnnotation for name with optional type
// arguments.
func NewTypeAnnotation(rng token.Range, name string, args ...*TypeAnnotation) *TypeAnnotation {
	return &TypeAnnotation{base: base{Rng: rng}, Name: name, TypeArgs: args}
}

// Analyze resolves the annotation's name (and its type arguments) against
// env's type table, reporting "unknown type name" if it cannot.
func (t *TypeAnnotation) Analyze(env values.Env) *diagnostics.Findings {
	findings := &diagnostics.Findings{}
	resolved, ok := resolveTypeName(env, t.Name)
	if !ok {
		findings.AddError("unknown type name '"+t.Name+"'", t.Rng)
		return findings
	}
	for _, arg := range t.TypeArgs {
		findings = diagnostics.Merge(findings, arg.Analyze(env))
	}
	if findings.IsErroneous() {
		return findings
	}
	if len(t.TypeArgs) > 0 {
		ct, ok := resolved.(*values.CompositeType)
		if !ok {
			findings.AddError("type '"+t.Name+"' does not accept type arguments", t.Rng)
			return findings
		}
		forked := ct.Fork()
		if len(t.TypeArgs) != forked.Placeholders.Len() {
			findings.AddError("wrong number of type arguments for '"+t.Name+"'", t.Rng)
			return findings
		}
		for i, name := range forked.Placeholders.Order {
			forked.Placeholders.ByName[name].Bind(t.TypeArgs[i].resolved)
		}
		resolved = forked
	}
	t.resolved = resolved
	return findings
}

// Type returns the annotation's resolved static type; only meaningful
// after a non-erroneous Analyze.
func (t *TypeAnnotation) Type() values.Type {
	if t.resolved == nil {
		values.Fail("type annotation '" + t.Name + "' was evaluated before a successful analyze")
	}
	return t.resolved
}

func resolveTypeName(env values.Env, name string) (values.Type, bool) {
	switch name {
	case "Boolean":
		return values.Boolean, true
	case "Number":
		return values.Number, true
	case "String":
		return values.String, true
	case "Nothing":
		return values.NothingType(), true
	}
	return env.LookupType(name)
}
