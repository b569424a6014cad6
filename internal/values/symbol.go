package values

// Flags carries the per-entry metadata the scoped tables track alongside
// every symbol (spec §3 "SymbolFlags").
type Flags struct {
	Readonly bool
	Stdlib   bool
}

// StaticSymbol lives in the analysis table: just a resolved static type.
type StaticSymbol struct {
	ValueType Type
}

// RuntimeSymbol lives in the runtime table: just a runtime value.
type RuntimeSymbol struct {
	Value Value
}
