package ast

import (
	"github.com/rouge-lang/rouge/internal/diagnostics"
	"github.com/rouge-lang/rouge/internal/token"
	"github.com/rouge-lang/rouge/internal/values"
)

// Parameter is one declared parameter of a Function: its name and
// declared type (spec §4.8).
type Parameter struct {
	Name     string
	TypeName *TypeAnnotation
}

// Function is a function-literal expression: its parameter list,
// optional declared return type, and body (spec §3 "FunctionValue",
// §4.8). Functions are ordinary first-class values in this language, so
// a Function expression is typically the right-hand side of a variable
// assignment.
type Function struct {
	base
	Parameters       []Parameter
	ReturnType       *TypeAnnotation // nil when undeclared
	PlaceholderNames []string
	Body             *Statements

	resolvedType       *values.FunctionType
	resolvedParamTypes map[string]values.Type
}

func NewFunction(rng token.Range, params []Parameter, returnType *TypeAnnotation, placeholders []string, body *Statements) *Function {
	return &Function{base: base{Rng: rng}, Parameters: params, ReturnType: returnType, PlaceholderNames: placeholders, Body: body}
}

// Analyze implements spec §4.8: push an analysis scope, analyze each
// parameter (no shadowing of outer symbols, no duplicate names, each
// type name must resolve), insert parameters as StaticSymbols, run the
// control-flow-graph-based return-placement check, then pop the scope.
func (f *Function) Analyze(env values.Env) *diagnostics.Findings {
	findings := &diagnostics.Findings{}

	env.PushTypeScope(false)
	placeholderSet := values.NewPlaceholders()
	for _, name := range f.PlaceholderNames {
		ph := placeholderSet.Add(name)
		env.DefineType(name, ph)
	}

	seen := make(map[string]bool, len(f.Parameters))
	for _, p := range f.Parameters {
		if seen[p.Name] {
			findings.AddError("duplicate parameter name '"+p.Name+"'", f.Rng)
			continue
		}
		seen[p.Name] = true
		if _, _, ok := env.FindStatic(p.Name); ok {
			findings.AddError("parameter '"+p.Name+"' shadows an existing variable", f.Rng)
		}
		findings = diagnostics.Merge(findings, p.TypeName.Analyze(env))
	}
	if f.ReturnType != nil {
		findings = diagnostics.Merge(findings, f.ReturnType.Analyze(env))
	}
	if findings.IsErroneous() {
		env.PopTypeScope()
		return findings
	}

	env.PushAnalysisScope()
	paramTypes := make(map[string]values.Type, len(f.Parameters))
	paramTypeList := make([]values.Type, len(f.Parameters))
	for i, p := range f.Parameters {
		t := p.TypeName.Type()
		paramTypes[p.Name] = t
		paramTypeList[i] = t
		env.DefineStatic(p.Name, &values.StaticSymbol{ValueType: t}, values.Flags{})
	}
	var retType values.Type
	if f.ReturnType != nil {
		retType = f.ReturnType.Type()
	}

	env.PushReturnType(retType, f.ReturnType != nil)
	findings = diagnostics.Merge(findings, f.Body.Analyze(env))
	findings = diagnostics.Merge(findings, analyzeReturnPlacements(f.Body, f.Rng))
	env.PopReturnType()

	env.PopAnalysisScope()
	env.PopTypeScope()

	fnType := values.NewFunctionType(paramTypeList, retType)
	fnType.Placeholders = placeholderSet
	f.resolvedType = fnType
	f.resolvedParamTypes = paramTypes

	return findings
}

func (f *Function) ResolveType(values.Env) values.Type {
	if f.resolvedType == nil {
		values.Fail("function literal resolved before a successful analyze")
	}
	return f.resolvedType
}

func (f *Function) Evaluate(values.Env) values.Value {
	if f.resolvedType == nil {
		values.Fail("function literal evaluated before a successful analyze")
	}
	names := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		names[i] = p.Name
	}
	return &values.FunctionValue{
		Body:           f.Body,
		ParameterNames: names,
		ParameterTypes: f.resolvedParamTypes,
		Placeholders:   f.resolvedType.Placeholders,
		ReturnType:     f.resolvedType.ReturnType,
		Typ:            f.resolvedType,
	}
}

// ReturnStatement raises a SignalReturn carrying its (optional)
// expression's value (spec §4.8).
type ReturnStatement struct {
	base
	Value Expression // nil when bare "return"
}

func NewReturnStatement(rng token.Range, value Expression) *ReturnStatement {
	return &ReturnStatement{base: base{Rng: rng}, Value: value}
}

func (r *ReturnStatement) Analyze(env values.Env) *diagnostics.Findings {
	findings := &diagnostics.Findings{}
	if r.Value != nil {
		findings = r.Value.Analyze(env)
	}

	declaredType, declared, hasEnclosing := env.CurrentReturnType()
	if !hasEnclosing {
		findings.AddError("'return' may only appear inside a function", r.Rng)
		return findings
	}

	switch {
	case declared && r.Value == nil:
		findings.AddError("this function needs to return a value", r.Rng)
	case !declared && r.Value != nil:
		findings.AddError("this function does not return a value", r.Rng)
	case declared && r.Value != nil:
		if !findings.IsErroneous() && !r.Value.ResolveType(env).CompatibleWith(declaredType) {
			findings.AddError("returned value is not compatible with the function's declared return type", r.Rng)
		}
	}
	return findings
}

func (r *ReturnStatement) Interpret(env values.Env) values.Signal {
	if r.Value == nil {
		return values.Return(values.NewNothing())
	}
	return values.Return(r.Value.Evaluate(env))
}

// analyzeReturnPlacements implements spec §4.8's control-flow-graph
// check: each Condition recursively expands into a true branch and a
// false/empty branch, each carrying the statements that follow the
// Condition; loops are walked straight through, never expanded into
// branches (spec §9 Open Question — preserved as-is). Every resulting
// leaf branch must contain exactly one ReturnStatement with nothing
// following it; "missing return" is reported once per function across
// all branches, "statements after return" is a warning per occurrence.
func analyzeReturnPlacements(body *Statements, fnRange token.Range) *diagnostics.Findings {
	findings := &diagnostics.Findings{}
	missingReported := false

	var walk func(stmts []Statement)
	walk = func(stmts []Statement) {
		for i, s := range stmts {
			cond, ok := s.(*Condition)
			if !ok {
				continue
			}
			prefix := stmts[:i]
			suffix := stmts[i+1:]

			trueBranch := concatStatements(prefix, cond.TrueStmts.Items, suffix)
			var falseItems []Statement
			if cond.FalseStmts != nil {
				falseItems = cond.FalseStmts.Items
			}
			falseBranch := concatStatements(prefix, falseItems, suffix)

			walk(trueBranch)
			walk(falseBranch)
			return
		}

		for i, s := range stmts {
			if _, ok := s.(*ReturnStatement); ok {
				if i < len(stmts)-1 {
					findings.AddWarning("statements never going to be run", stmts[i+1].TokenRange())
				}
				return
			}
		}
		if !missingReported {
			findings.AddError("missing a return statement somewhere", fnRange)
			missingReported = true
		}
	}

	walk(body.Items)
	return findings
}

func concatStatements(parts ...[]Statement) []Statement {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]Statement, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
