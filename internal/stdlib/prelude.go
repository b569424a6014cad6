package stdlib

import (
	"github.com/rouge-lang/rouge/internal/syntax"
	"github.com/rouge-lang/rouge/internal/values"
)

// Prelude is the standard library's source-text layer: it wraps the
// native runtime_* bindings under their public names, proving that a
// native binding is an ordinary callable from the language's own point
// of view (spec §4.11, §9 "native/runtime bindings ... indistinguishable
// from any other callable").
const Prelude = `
print = function(s: String) -> Nothing {
	return runtime_print_newline(s)
}

printNoNewline = function(s: String) -> Nothing {
	return runtime_print_no_newline(s)
}

panic = function(reason: String) -> Nothing {
	return runtime_panic(reason)
}

reverse = function(s: String) -> String {
	return runtime_reverse(s)
}
`

// LoadPrelude parses, analyzes, and interprets Prelude against env, which
// must already have Install's native bindings defined. It panics with a
// values.InternalError on failure: a malformed prelude is this module's
// bug, never a user-facing diagnostic.
func LoadPrelude(env values.Env) {
	program, parseErrors := syntax.Parse(Prelude)
	if len(parseErrors) > 0 {
		values.Fail("standard library prelude failed to parse: " + parseErrors[0])
	}
	if findings := program.Analyze(env); findings.IsErroneous() {
		values.Fail("standard library prelude failed analysis: " + findings.Errors[0].Message)
	}
	if sig := program.Interpret(env); !sig.IsNone() {
		values.Fail("standard library prelude produced an unexpected control-flow signal")
	}
}
