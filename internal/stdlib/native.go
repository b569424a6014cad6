// Package stdlib installs the native runtime bindings spec §4.11 and §6
// describe: a handful of Go closures exposed as ordinary callable
// language-level functions through the runtime bindings' reserved slot,
// plus (in prelude.go) a thin standard-library source layer that wraps
// them under their public names.
package stdlib

import (
	"github.com/rouge-lang/rouge/internal/values"
)

// hookBody is a values.StatementsNode whose Interpret reads its bound
// parameters out of the runtime scope Invocation.Evaluate already pushed
// and returns hook's result wrapped in a Signal. It is never statically
// analyzed: stdlib symbols are installed with values.Ignore as both
// their parameter and return types, so Invocation's analysis treats
// calls to them opaquely (spec §3 "IgnoreType").
type hookBody struct {
	paramNames []string
	hook       func(env values.Env, args []values.Value) values.Value
}

func (h *hookBody) Interpret(env values.Env) values.Signal {
	args := make([]values.Value, len(h.paramNames))
	for i, name := range h.paramNames {
		sym, _, ok := env.FindRuntime(name)
		if !ok {
			values.Fail("native binding missing bound parameter '" + name + "'")
		}
		args[i] = sym.Value
	}
	return values.Return(h.hook(env, args))
}

// binding is one native function's name, parameter names, and Go
// implementation.
type binding struct {
	name       string
	paramNames []string
	hook       func(env values.Env, args []values.Value) values.Value
}

var nativeBindings = []binding{
	{
		name:       "runtime_print_newline",
		paramNames: []string{"s"},
		hook: func(env values.Env, args []values.Value) values.Value {
			s, ok := args[0].(*values.StringValue)
			if !ok {
				values.Fail("runtime_print_newline expects a String argument")
			}
			env.Stdout().WriteLine(s.Value)
			return values.NewNothing()
		},
	},
	{
		name:       "runtime_print_no_newline",
		paramNames: []string{"s"},
		hook: func(env values.Env, args []values.Value) values.Value {
			s, ok := args[0].(*values.StringValue)
			if !ok {
				values.Fail("runtime_print_no_newline expects a String argument")
			}
			env.Stdout().WriteChunk(s.Value)
			return values.NewNothing()
		},
	},
	{
		name:       "runtime_panic",
		paramNames: []string{"reason"},
		hook: func(env values.Env, args []values.Value) values.Value {
			reason, ok := args[0].(*values.StringValue)
			if !ok {
				values.Fail("runtime_panic expects a String argument")
			}
			values.RaisePanic(reason.Value)
			return values.NewNothing() // unreachable: RaisePanic never returns
		},
	},
	{
		name:       "runtime_reverse",
		paramNames: []string{"s"},
		hook: func(env values.Env, args []values.Value) values.Value {
			s, ok := args[0].(*values.StringValue)
			if !ok {
				values.Fail("runtime_reverse expects a String argument")
			}
			runes := []rune(s.Value)
			for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
				runes[i], runes[j] = runes[j], runes[i]
			}
			return values.NewString(string(runes))
		},
	},
}

// Install defines every native binding in env's reserved runtime-binding
// slot and its analysis-table entry, flagged Stdlib so Invocation
// brackets visibility of the slot only for the span of a call to one of
// them (spec §4.11, §9 "bindings are invocation-local").
func Install(env values.Env) {
	for _, b := range nativeBindings {
		paramTypes := make([]values.Type, len(b.paramNames))
		for i := range paramTypes {
			paramTypes[i] = values.Ignore
		}
		fnType := values.NewFunctionType(paramTypes, values.Ignore)

		env.DefineStatic(b.name, &values.StaticSymbol{ValueType: fnType}, values.Flags{Stdlib: true, Readonly: true})

		paramTypeMap := make(map[string]values.Type, len(b.paramNames))
		for _, name := range b.paramNames {
			paramTypeMap[name] = values.Ignore
		}
		fn := &values.FunctionValue{
			Body:           &hookBody{paramNames: b.paramNames, hook: b.hook},
			ParameterNames: b.paramNames,
			ParameterTypes: paramTypeMap,
			ReturnType:     values.Ignore,
			Typ:            fnType,
		}
		env.DefineRuntimeBinding(b.name, &values.RuntimeSymbol{Value: fn}, values.Flags{Stdlib: true, Readonly: true})
	}
}

// Names reports the installed native bindings' names, for diagnostics
// and tests.
func Names() []string {
	names := make([]string, len(nativeBindings))
	for i, b := range nativeBindings {
		names[i] = b.name
	}
	return names
}

// IsNative reports whether name is one of the installed native bindings.
func IsNative(name string) bool {
	for _, b := range nativeBindings {
		if b.name == name {
			return true
		}
	}
	return false
}
