package ast

import (
	"github.com/rouge-lang/rouge/internal/diagnostics"
	"github.com/rouge-lang/rouge/internal/token"
	"github.com/rouge-lang/rouge/internal/values"
)

// ReferenceExpression reads a variable by name (spec §4.4).
type ReferenceExpression struct {
	base
	Name string
}

func NewReferenceExpression(rng token.Range, name string) *ReferenceExpression {
	return &ReferenceExpression{base: base{Rng: rng}, Name: name}
}

func (r *ReferenceExpression) Analyze(env values.Env) *diagnostics.Findings {
	findings := &diagnostics.Findings{}
	if _, _, ok := env.FindStatic(r.Name); !ok {
		findings.AddError("variable '"+r.Name+"' is not defined", r.Rng)
	}
	return findings
}

func (r *ReferenceExpression) ResolveType(env values.Env) values.Type {
	sym, _, ok := env.FindStatic(r.Name)
	if !ok {
		values.Fail("reference to undefined variable '" + r.Name + "' reached resolveType")
	}
	return sym.ValueType
}

func (r *ReferenceExpression) Evaluate(env values.Env) values.Value {
	sym, _, ok := env.FindRuntime(r.Name)
	if !ok {
		values.Fail("reference to undefined variable '" + r.Name + "' reached evaluate")
	}
	return sym.Value
}

// PropertyAccess reads a field off a composite value: parent.child
// (spec §4.4). Chained access (a.b.c) is built left-associatively by
// the parser into nested PropertyAccess nodes.
type PropertyAccess struct {
	base
	Parent Expression
	Child  string
}

func NewPropertyAccess(rng token.Range, parent Expression, child string) *PropertyAccess {
	return &PropertyAccess{base: base{Rng: rng}, Parent: parent, Child: child}
}

func (p *PropertyAccess) Analyze(env values.Env) *diagnostics.Findings {
	findings := p.Parent.Analyze(env)
	if findings.IsErroneous() {
		return findings
	}
	parentType := p.Parent.ResolveType(env)
	if _, ok := parentType.(values.IgnoreType); ok {
		return findings
	}
	composite, ok := parentType.(*values.CompositeType)
	if !ok {
		findings.AddError("left-hand side of '.' is not a structure", p.Rng)
		return findings
	}
	if _, ok := composite.FieldType(p.Child); !ok {
		findings.AddError("structure '"+composite.Id+"' has no field '"+p.Child+"'", p.Rng)
	}
	return findings
}

func (p *PropertyAccess) ResolveType(env values.Env) values.Type {
	parentType := p.Parent.ResolveType(env)
	if _, ok := parentType.(values.IgnoreType); ok {
		return values.Ignore
	}
	composite, ok := parentType.(*values.CompositeType)
	if !ok {
		values.Fail("property access on a non-structure reached resolveType")
	}
	fieldType, ok := composite.FieldType(p.Child)
	if !ok {
		values.Fail("property access to unknown field '" + p.Child + "' reached resolveType")
	}
	return fieldType
}

func (p *PropertyAccess) Evaluate(env values.Env) values.Value {
	parent := p.Parent.Evaluate(env)
	composite, ok := parent.(*values.CompositeValue)
	if !ok {
		values.Fail("property access on a non-structure value reached evaluate")
	}
	field, ok := composite.Field(p.Child)
	if !ok {
		values.Fail("property access to missing field '" + p.Child + "' reached evaluate")
	}
	return field
}
