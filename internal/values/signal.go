package values

// SignalKind distinguishes the non-local exits a statement's Interpret
// can raise: Return, Break, Continue (spec §5 "Signal"). User panic is
// modeled separately, as a genuine Go panic carrying a UserPanic value
// (see panic.go) rather than as a Signal: unlike return/break/continue,
// a panic must unwind through Evaluate (expression) call frames too,
// which do not return a Signal, so only Go's native unwinding crosses
// that boundary uniformly. Scopes still pop correctly on a panic because
// every push is paired with a deferred pop.
type SignalKind int

const (
	// SignalNone means the statement completed normally; it carries no
	// control-flow event.
	SignalNone SignalKind = iota
	SignalReturn
	SignalBreak
	SignalContinue
)

// Signal is the bespoke result-enum used to thread Return/Break/Continue
// through Interpret calls, per the design alternative spec.md's §9
// design notes calls out explicitly (a Signal sum type threaded through
// interpret results, rather than host-level unwinding).
type Signal struct {
	Kind        SignalKind
	ReturnValue Value // set when Kind == SignalReturn
}

// None is the zero Signal: normal completion.
var None = Signal{Kind: SignalNone}

// IsNone reports whether s represents normal completion.
func (s Signal) IsNone() bool { return s.Kind == SignalNone }

// Return builds a SignalReturn carrying v.
func Return(v Value) Signal { return Signal{Kind: SignalReturn, ReturnValue: v} }

// Break builds a SignalBreak.
func Break() Signal { return Signal{Kind: SignalBreak} }

// Continue builds a SignalContinue.
func Continue() Signal { return Signal{Kind: SignalContinue} }
