package ast

import (
	"github.com/rouge-lang/rouge/internal/diagnostics"
	"github.com/rouge-lang/rouge/internal/token"
	"github.com/rouge-lang/rouge/internal/values"
)

// FieldDeclaration is one named, typed field of a TypeDefinition.
type FieldDeclaration struct {
	Name     string
	TypeName *TypeAnnotation
}

// TypeDefinition introduces a nominal composite type into the current
// type scope: struct Id[Placeholders] { fields } (spec §4.9). Its
// identity is Id, not its field shape (spec §3 "nominal typing").
type TypeDefinition struct {
	base
	Id               string
	PlaceholderNames []string
	Fields           []FieldDeclaration

	resolved *values.CompositeType
}

func NewTypeDefinition(rng token.Range, id string, placeholders []string, fields []FieldDeclaration) *TypeDefinition {
	return &TypeDefinition{base: base{Rng: rng}, Id: id, PlaceholderNames: placeholders, Fields: fields}
}

// Analyze builds the CompositeType and defines it under Id in env's
// current type scope so later statements (and, for a self-referential
// field, this same definition) can resolve it by name.
func (d *TypeDefinition) Analyze(env values.Env) *diagnostics.Findings {
	findings := &diagnostics.Findings{}

	if _, exists := env.LookupType(d.Id); exists {
		findings.AddError("type '"+d.Id+"' is already defined", d.Rng)
		return findings
	}

	composite := values.NewCompositeType(d.Id)
	env.DefineType(d.Id, composite)

	env.PushTypeScope(false)
	for _, name := range d.PlaceholderNames {
		ph := composite.Placeholders.Add(name)
		env.DefineType(name, ph)
	}

	seen := make(map[string]bool, len(d.Fields))
	for _, f := range d.Fields {
		if seen[f.Name] {
			findings.AddError("duplicate field name '"+f.Name+"' in '"+d.Id+"'", d.Rng)
			continue
		}
		seen[f.Name] = true
		findings = diagnostics.Merge(findings, f.TypeName.Analyze(env))
	}
	env.PopTypeScope()

	if findings.IsErroneous() {
		return findings
	}
	for _, f := range d.Fields {
		composite.AddField(f.Name, f.TypeName.Type())
	}
	d.resolved = composite
	return findings
}

// Interpret is a no-op: the type was already installed into env's type
// table during Analyze, and analysis and interpretation share the same
// environment (spec §2 data flow).
func (d *TypeDefinition) Interpret(values.Env) values.Signal {
	return values.None
}
