package values

// Stream is the minimal interface standard streams expose to runtime
// bindings (spec §6 "Streams expose writeLine(s), writeChunk(s)").
type Stream interface {
	WriteLine(s string)
	WriteChunk(s string)
}

// Env is the ExecutionEnvironment contract every AST node's
// analyze/resolveType/evaluate/interpret method is threaded through
// (spec §5: "one implicit global context ... every node receives it as
// an explicit parameter"). It is declared here, not in a separate
// environment package, so that the ast package can depend on it without
// creating an import cycle back through FunctionValue.Body.
type Env interface {
	// Analysis table: static symbols, scoped by lexical block.
	PushAnalysisScope()
	PopAnalysisScope()
	FindStatic(name string) (*StaticSymbol, Flags, bool)
	DefineStatic(name string, sym *StaticSymbol, flags Flags)

	// Runtime table: runtime symbols, scoped by lexical block.
	PushRuntimeScope()
	PopRuntimeScope()
	FindRuntime(name string) (*RuntimeSymbol, Flags, bool)
	DefineRuntime(name string, sym *RuntimeSymbol, flags Flags)

	// Runtime bindings' reserved slot (spec §3 "Lifecycle" / §4.11).
	DefineRuntimeBinding(name string, sym *RuntimeSymbol, flags Flags)
	// SetIgnoreRuntimeBindings flips visibility of the reserved slot and
	// returns the previous value, so callers can bracket the flip
	// (spec invariant: bindings are invocation-local).
	SetIgnoreRuntimeBindings(bool) bool

	// Type table: named composite types plus the loop-flag scope stack
	// control-flow modifiers consult.
	PushTypeScope(loop bool)
	PopTypeScope()
	DefineType(name string, t Type)
	LookupType(name string) (Type, bool)
	InLoop() bool

	// Enclosing-function context for return-statement analysis (spec
	// §4.8: "the enclosing function's declared return type retrieved
	// from typeTable.getReturnType()").
	PushReturnType(t Type, declared bool)
	PopReturnType()
	CurrentReturnType() (Type, bool, bool) // type, declared, hasEnclosingFunction

	// AssignmentTarget is the analyzer hint described in spec §4.3 step
	// 1: the name an in-flight variable assignment's RHS is being
	// analyzed for, so nested expressions may attach annotations by name.
	PushAssignmentTarget(name string)
	PopAssignmentTarget()
	AssignmentTarget() (string, bool)

	Source() string

	Stdout() Stream
	Stderr() Stream
	Stdin() Stream
}
