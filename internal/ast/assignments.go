package ast

import (
	"github.com/rouge-lang/rouge/internal/diagnostics"
	"github.com/rouge-lang/rouge/internal/token"
	"github.com/rouge-lang/rouge/internal/values"
)

// VariableAssignment is either an initial assignment (introducing a new
// binding) or a reassignment to an existing one (spec §4.3): ident [:
// TypeLiteral] = expr.
type VariableAssignment struct {
	base
	Name       string
	Annotation *TypeAnnotation // nil when absent
	Value      Expression
}

func NewVariableAssignment(rng token.Range, name string, annotation *TypeAnnotation, value Expression) *VariableAssignment {
	return &VariableAssignment{base: base{Rng: rng}, Name: name, Annotation: annotation, Value: value}
}

func (a *VariableAssignment) Analyze(env values.Env) *diagnostics.Findings {
	env.PushAssignmentTarget(a.Name)
	exprFindings := a.Value.Analyze(env)
	env.PopAssignmentTarget()

	existing, flags, exists := env.FindStatic(a.Name)

	if !exists {
		findings := exprFindings
		if a.Annotation != nil {
			findings = diagnostics.Merge(findings, a.Annotation.Analyze(env))
		}
		if findings.IsErroneous() {
			return findings
		}
		exprType := a.Value.ResolveType(env)
		if a.Annotation != nil && !exprType.CompatibleWith(a.Annotation.Type()) {
			findings.AddError("type of the assigned value is not compatible with the declared type of '"+a.Name+"'", a.Rng)
			return findings
		}
		valueType := exprType
		if a.Annotation != nil {
			valueType = a.Annotation.Type()
		}
		env.DefineStatic(a.Name, &values.StaticSymbol{ValueType: valueType}, values.Flags{})
		return findings
	}

	findings := exprFindings
	if flags.Readonly {
		findings.AddError("'"+a.Name+"' is read-only and cannot be reassigned", a.Rng)
	}
	if a.Annotation != nil {
		findings.AddError("a type annotation is only allowed on the first assignment to '"+a.Name+"'", a.Rng)
	}
	if findings.IsErroneous() {
		return findings
	}
	exprType := a.Value.ResolveType(env)
	if !exprType.CompatibleWith(existing.ValueType) {
		findings.AddError("type of the assigned value is not compatible with the type '"+a.Name+"' was first assigned", a.Rng)
	}
	return findings
}

func (a *VariableAssignment) Interpret(env values.Env) values.Signal {
	value := a.Value.Evaluate(env)
	sym, _, exists := env.FindStatic(a.Name)
	if !exists {
		values.Fail("variable assignment to '" + a.Name + "' reached interpret without a prior analyze")
	}
	value.SetValueType(sym.ValueType)
	if existing, _, found := env.FindRuntime(a.Name); found {
		existing.Value = value
		return values.None
	}
	env.DefineRuntime(a.Name, &values.RuntimeSymbol{Value: value}, values.Flags{})
	return values.None
}

// PropertyWrite assigns to a field on a composite value: parent.child =
// value (spec §4.3). Nested chains (a.b.c = v) are parsed as a
// PropertyAccess parent with Child = "c".
type PropertyWrite struct {
	base
	Parent Expression
	Child  string
	Value  Expression
}

func NewPropertyWrite(rng token.Range, parent Expression, child string, value Expression) *PropertyWrite {
	return &PropertyWrite{base: base{Rng: rng}, Parent: parent, Child: child, Value: value}
}

func (p *PropertyWrite) Analyze(env values.Env) *diagnostics.Findings {
	findings := diagnostics.Merge(p.Parent.Analyze(env), p.Value.Analyze(env))
	if findings.IsErroneous() {
		return findings
	}
	parentType := p.Parent.ResolveType(env)
	composite, ok := parentType.(*values.CompositeType)
	if !ok {
		if _, isIgnore := parentType.(values.IgnoreType); !isIgnore {
			findings.AddError("left-hand side of '.' is not a structure", p.Rng)
			return findings
		}
		return findings
	}
	fieldType, ok := composite.FieldType(p.Child)
	if !ok {
		findings.AddError("structure '"+composite.Id+"' has no field '"+p.Child+"'", p.Rng)
		return findings
	}
	valueType := p.Value.ResolveType(env)
	if !valueType.CompatibleWith(fieldType) {
		findings.AddError("type of the assigned value is not compatible with field '"+p.Child+"'", p.Rng)
	}
	return findings
}

func (p *PropertyWrite) Interpret(env values.Env) values.Signal {
	parentVal := p.Parent.Evaluate(env)
	composite, ok := parentVal.(*values.CompositeValue)
	if !ok {
		values.Fail("property write on a non-structure value reached interpret")
	}
	composite.SetField(p.Child, p.Value.Evaluate(env))
	return values.None
}
