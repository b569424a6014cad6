package ast

import (
	"fmt"

	"github.com/rouge-lang/rouge/internal/diagnostics"
	"github.com/rouge-lang/rouge/internal/token"
	"github.com/rouge-lang/rouge/internal/values"
)

// Invocation calls a callable symbol or constructs a composite value by
// type name (spec §4.5). Placeholders carries the explicit type
// arguments a generic call supplies, e.g. identity[Number](5).
type Invocation struct {
	base
	Callee       Expression
	Placeholders []*TypeAnnotation
	Arguments    []Expression

	resolvedFn      *values.FunctionType
	resolvedCtor    *values.CompositeType
	calleeIsStdlib  bool
	calleeName      string
}

func NewInvocation(rng token.Range, callee Expression, placeholders []*TypeAnnotation, args []Expression) *Invocation {
	return &Invocation{base: base{Rng: rng}, Callee: callee, Placeholders: placeholders, Arguments: args}
}

func (inv *Invocation) Analyze(env values.Env) *diagnostics.Findings {
	parts := make([]*diagnostics.Findings, 0, len(inv.Arguments)+2)
	for _, arg := range inv.Arguments {
		parts = append(parts, arg.Analyze(env))
	}
	for _, ph := range inv.Placeholders {
		parts = append(parts, ph.Analyze(env))
	}

	ref, calleeIsReference := inv.Callee.(*ReferenceExpression)
	var calleeFindings *diagnostics.Findings
	var ctorType *values.CompositeType
	if calleeIsReference {
		if _, _, ok := env.FindStatic(ref.Name); !ok {
			if t, ok := env.LookupType(ref.Name); ok {
				if ct, ok := t.(*values.CompositeType); ok {
					ctorType = ct
				}
			}
			if ctorType == nil {
				calleeFindings = &diagnostics.Findings{}
				calleeFindings.AddError("'"+ref.Name+"' is neither a callable symbol nor a type name", inv.Rng)
			}
		} else {
			calleeFindings = inv.Callee.Analyze(env)
		}
	} else {
		calleeFindings = inv.Callee.Analyze(env)
	}
	parts = append(parts, calleeFindings)
	findings := diagnostics.Merge(parts...)
	if findings.IsErroneous() {
		return findings
	}

	if ctorType != nil {
		return inv.analyzeConstructor(env, ctorType, findings)
	}
	return inv.analyzeCall(env, findings)
}

func (inv *Invocation) analyzeConstructor(env values.Env, ctorType *values.CompositeType, findings *diagnostics.Findings) *diagnostics.Findings {
	forked := ctorType.Fork()
	if len(inv.Placeholders) > 0 {
		if len(inv.Placeholders) != forked.Placeholders.Len() {
			findings.AddError("wrong number of type arguments for '"+forked.Id+"'", inv.Rng)
			return findings
		}
		for i, name := range forked.Placeholders.Order {
			forked.Placeholders.ByName[name].Bind(inv.Placeholders[i].Type())
		}
	}
	if len(inv.Arguments) != len(forked.FieldOrder) {
		findings.AddError(fmt.Sprintf("'%s' expects %d field value(s), got %d", forked.Id, len(forked.FieldOrder), len(inv.Arguments)), inv.Rng)
		return findings
	}
	for i, fieldName := range forked.FieldOrder {
		argType := inv.Arguments[i].ResolveType(env)
		fieldType := forked.Fields[fieldName]
		if !argType.CompatibleWith(fieldType) {
			findings.AddError(fmt.Sprintf("argument %d is not compatible with field '%s' of '%s'", i+1, fieldName, forked.Id), inv.Rng)
		}
	}
	inv.resolvedCtor = forked
	return findings
}

func (inv *Invocation) analyzeCall(env values.Env, findings *diagnostics.Findings) *diagnostics.Findings {
	calleeType := inv.Callee.ResolveType(env)
	if _, ok := calleeType.(values.IgnoreType); ok {
		inv.resolvedFn = values.NewFunctionType(nil, values.Ignore)
		if ref, ok := inv.Callee.(*ReferenceExpression); ok {
			inv.calleeName = ref.Name
			_, flags, _ := env.FindStatic(ref.Name)
			inv.calleeIsStdlib = flags.Stdlib
		}
		return findings
	}
	fnType, ok := calleeType.(*values.FunctionType)
	if !ok {
		findings.AddError("callee is not callable", inv.Rng)
		return findings
	}

	forked := fnType.Fork()
	if len(inv.Placeholders) > 0 || forked.Placeholders.Len() > 0 {
		if len(inv.Placeholders) != forked.Placeholders.Len() {
			findings.AddError("wrong number of type arguments in call", inv.Rng)
			return findings
		}
		for i, name := range forked.Placeholders.Order {
			forked.Placeholders.ByName[name].Bind(inv.Placeholders[i].Type())
		}
	}
	if len(inv.Arguments) != len(forked.Parameters) {
		findings.AddError(fmt.Sprintf("expected %d argument(s), got %d", len(forked.Parameters), len(inv.Arguments)), inv.Rng)
		return findings
	}
	for i, paramType := range forked.Parameters {
		argType := inv.Arguments[i].ResolveType(env)
		if !argType.CompatibleWith(paramType) {
			findings.AddError(fmt.Sprintf("argument %d is not compatible with the declared parameter type", i+1), inv.Rng)
		}
	}
	inv.resolvedFn = forked
	if ref, ok := inv.Callee.(*ReferenceExpression); ok {
		inv.calleeName = ref.Name
		_, flags, _ := env.FindStatic(ref.Name)
		inv.calleeIsStdlib = flags.Stdlib
	}
	return findings
}

func (inv *Invocation) ResolveType(env values.Env) values.Type {
	if inv.resolvedCtor != nil {
		return inv.resolvedCtor
	}
	if inv.resolvedFn == nil {
		values.Fail("invocation resolved before a successful analyze")
	}
	if inv.resolvedFn.ReturnType == nil {
		return values.NothingType()
	}
	return inv.resolvedFn.ReturnType
}

func (inv *Invocation) Evaluate(env values.Env) values.Value {
	if inv.resolvedCtor != nil {
		return inv.evaluateConstructor(env)
	}

	if inv.calleeIsStdlib {
		previous := env.SetIgnoreRuntimeBindings(false)
		defer env.SetIgnoreRuntimeBindings(previous)
	}
	calleeVal := inv.Callee.Evaluate(env)
	fn, ok := calleeVal.(*values.FunctionValue)
	if !ok {
		values.Fail("invocation callee did not evaluate to a function value")
	}

	argVals := make([]values.Value, len(inv.Arguments))
	for i, arg := range inv.Arguments {
		argVals[i] = arg.Evaluate(env)
	}

	env.PushRuntimeScope()
	defer env.PopRuntimeScope()
	for i, name := range fn.ParameterNames {
		env.DefineRuntime(name, &values.RuntimeSymbol{Value: argVals[i]}, values.Flags{})
	}
	sig := fn.Body.Interpret(env)

	if sig.Kind == values.SignalReturn {
		return sig.ReturnValue
	}
	return values.NewNothing()
}

func (inv *Invocation) evaluateConstructor(env values.Env) values.Value {
	result := values.NewComposite(inv.resolvedCtor)
	for i, fieldName := range inv.resolvedCtor.FieldOrder {
		result.SetField(fieldName, inv.Arguments[i].Evaluate(env))
	}
	return result
}
