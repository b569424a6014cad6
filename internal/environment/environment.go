// Package environment provides the concrete ExecutionEnvironment: the
// analysis table, runtime table, type table, source text, and standard
// streams threaded through every AST node's analyze/interpret call
// (spec §6 "ExecutionEnvironment"). It implements values.Env so the ast
// package can depend on that interface without importing this package.
package environment

import (
	"github.com/rouge-lang/rouge/internal/symtab"
	"github.com/rouge-lang/rouge/internal/values"
)

type staticEntry struct {
	symbol *values.StaticSymbol
	flags  values.Flags
}

type runtimeEntry struct {
	symbol *values.RuntimeSymbol
	flags  values.Flags
}

type returnCtx struct {
	typ      values.Type
	declared bool
}

// Environment is the concrete values.Env implementation.
type Environment struct {
	analysis *symtab.Stack[staticEntry]
	runtime  *symtab.Stack[runtimeEntry]
	types    *symtab.Stack[values.Type]

	// runtime bindings' reserved slot, outside the ordinary scope stack
	// (spec §3 "Lifecycle", §4.11).
	bindings               map[string]runtimeEntry
	ignoreRuntimeBindings  bool

	returnStack []returnCtx
	targetStack []string

	source string
	stdout values.Stream
	stderr values.Stream
	stdin  values.Stream
}

// New builds a fresh root ExecutionEnvironment over the given source
// text (used only for diagnostic snippet rendering elsewhere) and
// standard streams. Streams may be nil when only analysis is performed
// (spec §6).
func New(source string, stdout, stderr, stdin values.Stream) *Environment {
	return &Environment{
		analysis:              symtab.New[staticEntry](),
		runtime:               symtab.New[runtimeEntry](),
		types:                 symtab.New[values.Type](),
		bindings:              make(map[string]runtimeEntry),
		ignoreRuntimeBindings: true,
		source:                source,
		stdout:                stdout,
		stderr:                stderr,
		stdin:                 stdin,
	}
}

func (e *Environment) PushAnalysisScope() { e.analysis.Push(false) }
func (e *Environment) PopAnalysisScope()  { e.analysis.Pop() }

func (e *Environment) FindStatic(name string) (*values.StaticSymbol, values.Flags, bool) {
	entry, ok := e.analysis.Find(name)
	if !ok {
		return nil, values.Flags{}, false
	}
	return entry.symbol, entry.flags, true
}

func (e *Environment) DefineStatic(name string, sym *values.StaticSymbol, flags values.Flags) {
	e.analysis.Define(name, staticEntry{symbol: sym, flags: flags})
}

func (e *Environment) PushRuntimeScope() { e.runtime.Push(false) }
func (e *Environment) PopRuntimeScope()  { e.runtime.Pop() }

func (e *Environment) FindRuntime(name string) (*values.RuntimeSymbol, values.Flags, bool) {
	if entry, ok := e.runtime.Find(name); ok {
		return entry.symbol, entry.flags, true
	}
	if !e.ignoreRuntimeBindings {
		if entry, ok := e.bindings[name]; ok {
			return entry.symbol, entry.flags, true
		}
	}
	return nil, values.Flags{}, false
}

func (e *Environment) DefineRuntime(name string, sym *values.RuntimeSymbol, flags values.Flags) {
	e.runtime.Define(name, runtimeEntry{symbol: sym, flags: flags})
}

func (e *Environment) DefineRuntimeBinding(name string, sym *values.RuntimeSymbol, flags values.Flags) {
	e.bindings[name] = runtimeEntry{symbol: sym, flags: flags}
}

func (e *Environment) SetIgnoreRuntimeBindings(ignore bool) bool {
	previous := e.ignoreRuntimeBindings
	e.ignoreRuntimeBindings = ignore
	return previous
}

func (e *Environment) PushTypeScope(loop bool) { e.types.Push(loop) }
func (e *Environment) PopTypeScope()           { e.types.Pop() }

func (e *Environment) DefineType(name string, t values.Type) { e.types.Define(name, t) }

func (e *Environment) LookupType(name string) (values.Type, bool) {
	return e.types.Find(name)
}

func (e *Environment) InLoop() bool { return e.types.InLoop() }

func (e *Environment) PushReturnType(t values.Type, declared bool) {
	e.returnStack = append(e.returnStack, returnCtx{typ: t, declared: declared})
}

func (e *Environment) PopReturnType() {
	e.returnStack = e.returnStack[:len(e.returnStack)-1]
}

func (e *Environment) CurrentReturnType() (values.Type, bool, bool) {
	if len(e.returnStack) == 0 {
		return nil, false, false
	}
	top := e.returnStack[len(e.returnStack)-1]
	return top.typ, top.declared, true
}

func (e *Environment) PushAssignmentTarget(name string) {
	e.targetStack = append(e.targetStack, name)
}

func (e *Environment) PopAssignmentTarget() {
	e.targetStack = e.targetStack[:len(e.targetStack)-1]
}

func (e *Environment) AssignmentTarget() (string, bool) {
	if len(e.targetStack) == 0 {
		return "", false
	}
	return e.targetStack[len(e.targetStack)-1], true
}

func (e *Environment) Source() string { return e.source }

func (e *Environment) Stdout() values.Stream { return e.stdout }
func (e *Environment) Stderr() values.Stream { return e.stderr }
func (e *Environment) Stdin() values.Stream  { return e.stdin }
