// Package runner wires the lexer/parser, the standard library, and the
// analyzer/interpreter passes together into the single pipeline spec §2
// describes: source text -> AST -> analysis (stop on error) ->
// interpretation -> side effects on stdout/stderr.
package runner

import (
	"fmt"
	"io"

	"github.com/rouge-lang/rouge/internal/diagnostics"
	"github.com/rouge-lang/rouge/internal/environment"
	"github.com/rouge-lang/rouge/internal/stdlib"
	"github.com/rouge-lang/rouge/internal/syntax"
	"github.com/rouge-lang/rouge/internal/values"
)

// ExitCode mirrors the command-line driver's exit-code convention (spec
// §9 "Supplemented features"): 0 on a clean run, 1 when parsing or
// analysis reported an error, 2 when a runtime panic went uncaught.
type ExitCode int

const (
	ExitOK             ExitCode = 0
	ExitAnalysisFailed ExitCode = 1
	ExitPanicked       ExitCode = 2
)

// Result carries everything a caller (the CLI, or a test) needs to
// report on a run: the source's Findings (possibly nil, when parsing
// itself failed), the exit code, and a panic reason when one occurred.
type Result struct {
	ParseErrors []string
	Findings    *diagnostics.Findings
	PanicReason string
	Code        ExitCode
}

// Check parses and analyzes source without interpreting it (the CLI's
// "check" subcommand): a dry run that only reports diagnostics.
func Check(source string) Result {
	env := environment.New(source, nil, nil, nil)
	stdlib.Install(env)
	stdlib.LoadPrelude(env)

	program, parseErrors := syntax.Parse(source)
	if len(parseErrors) > 0 {
		return Result{ParseErrors: parseErrors, Code: ExitAnalysisFailed}
	}

	findings := program.Analyze(env)
	if findings.IsErroneous() {
		return Result{Findings: findings, Code: ExitAnalysisFailed}
	}
	return Result{Findings: findings, Code: ExitOK}
}

// Run parses, analyzes, and (when analysis is clean) interprets source,
// writing program output to stdout/stderr. It recovers exactly one
// values.UserPanic at the top level (spec §5 "a top-level panic
// terminates interpretation"); any other panic (an values.InternalError
// or a genuine Go bug) is left to propagate, since those signal a defect
// in this module rather than in the program being run.
func Run(source string, stdout, stderr io.Writer) (result Result) {
	env := environment.New(source, environment.NewWriterStream(stdout), environment.NewWriterStream(stderr), nil)
	stdlib.Install(env)
	stdlib.LoadPrelude(env)

	program, parseErrors := syntax.Parse(source)
	if len(parseErrors) > 0 {
		return Result{ParseErrors: parseErrors, Code: ExitAnalysisFailed}
	}

	findings := program.Analyze(env)
	if findings.IsErroneous() {
		return Result{Findings: findings, Code: ExitAnalysisFailed}
	}

	defer func() {
		if r := recover(); r != nil {
			up, ok := r.(values.UserPanic)
			if !ok {
				panic(r)
			}
			fmt.Fprintf(stderr, "uncaught panic: %s\n", up.Reason)
			result = Result{Findings: findings, PanicReason: up.Reason, Code: ExitPanicked}
		}
	}()

	program.Interpret(env)
	return Result{Findings: findings, Code: ExitOK}
}
