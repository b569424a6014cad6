package ast_test

import (
	"strings"
	"testing"

	"github.com/rouge-lang/rouge/internal/environment"
	"github.com/rouge-lang/rouge/internal/stdlib"
	"github.com/rouge-lang/rouge/internal/syntax"
)

func TestArithmeticAndReassignment(t *testing.T) {
	out := &captureStream{}
	program, parseErrs := syntax.Parse(`
x: Number = 1 + 2
x = x * 3
printNoNewline(reverse("abc"))
`)
	if len(parseErrs) > 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}
	env := environment.New("", environment.NewWriterStream(out), environment.NewWriterStream(out), nil)
	stdlib.Install(env)
	stdlib.LoadPrelude(env)

	findings := program.Analyze(env)
	if findings.IsErroneous() {
		t.Fatalf("unexpected analysis errors: %v", findings.Errors)
	}
	program.Interpret(env)

	if out.String() != "cba" {
		t.Errorf("expected stdout %q, got %q", "cba", out.String())
	}
}

func TestReassignmentTypeMismatchIsAnError(t *testing.T) {
	program, parseErrs := syntax.Parse(`
x = 1
x = "oops"
`)
	if len(parseErrs) > 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}
	env := environment.New("", nil, nil, nil)
	stdlib.Install(env)
	stdlib.LoadPrelude(env)
	findings := program.Analyze(env)
	if !findings.IsErroneous() {
		t.Fatal("expected a type-mismatch error reassigning 'x' from Number to String")
	}
}

func TestAnnotationOnReassignmentIsAnError(t *testing.T) {
	program, parseErrs := syntax.Parse(`
x = 1
x: Number = 2
`)
	if len(parseErrs) > 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}
	env := environment.New("", nil, nil, nil)
	stdlib.Install(env)
	stdlib.LoadPrelude(env)
	findings := program.Analyze(env)
	if !findings.IsErroneous() {
		t.Fatal("expected an error: a type annotation is only allowed on the first assignment")
	}
}

func TestDuplicateParameterNameIsAnError(t *testing.T) {
	program, parseErrs := syntax.Parse(`
f = function(a: Number, a: Number) -> Number {
	return a
}
`)
	if len(parseErrs) > 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}
	env := environment.New("", nil, nil, nil)
	stdlib.Install(env)
	stdlib.LoadPrelude(env)
	findings := program.Analyze(env)
	if !findings.IsErroneous() {
		t.Fatal("expected a duplicate-parameter-name error")
	}
}

func TestMissingReturnIsDetected(t *testing.T) {
	program, parseErrs := syntax.Parse(`
f = function(flag: Boolean) -> Number {
	if flag {
		return 1
	}
}
`)
	if len(parseErrs) > 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}
	env := environment.New("", nil, nil, nil)
	stdlib.Install(env)
	stdlib.LoadPrelude(env)
	findings := program.Analyze(env)
	if !findings.IsErroneous() {
		t.Fatal("expected a missing-return error for the false branch")
	}
	found := false
	for _, e := range findings.Errors {
		if strings.Contains(e.Message, "missing a return statement") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a 'missing a return statement' error, got %v", findings.Errors)
	}
}

func TestStatementsAfterReturnIsAWarning(t *testing.T) {
	program, parseErrs := syntax.Parse(`
f = function() -> Number {
	return 1
	x = 2
}
`)
	if len(parseErrs) > 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}
	env := environment.New("", nil, nil, nil)
	stdlib.Install(env)
	stdlib.LoadPrelude(env)
	findings := program.Analyze(env)
	if findings.IsErroneous() {
		t.Fatalf("unexpected analysis errors: %v", findings.Errors)
	}
	if len(findings.Warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %d: %v", len(findings.Warnings), findings.Warnings)
	}
	if !strings.Contains(findings.Warnings[0].Message, "never going to be run") {
		t.Errorf("expected a 'never going to be run' warning, got %q", findings.Warnings[0].Message)
	}
}

func TestGenericFunctionPlaceholderBindingsDoNotLeakAcrossCalls(t *testing.T) {
	out := &captureStream{}
	program, parseErrs := syntax.Parse(`
identity = function[T](v: T) -> T {
	return v
}
a = identity[Number](1)
b = identity[String]("two")
printNoNewline(b)
printNoNewline(reverse("x"))
c = a + 1
`)
	if len(parseErrs) > 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}
	env := environment.New("", environment.NewWriterStream(out), environment.NewWriterStream(out), nil)
	stdlib.Install(env)
	stdlib.LoadPrelude(env)
	findings := program.Analyze(env)
	if findings.IsErroneous() {
		t.Fatalf("unexpected analysis errors: %v", findings.Errors)
	}
	program.Interpret(env)
	if out.String() != "twox" {
		t.Errorf("expected stdout %q, got %q", "twox", out.String())
	}
}

func TestStructConstructionAndFieldAccess(t *testing.T) {
	out := &captureStream{}
	program, parseErrs := syntax.Parse(`
struct Point {
	x: Number
	y: Number
}
p = Point(1, 2)
p.x = p.x + p.y
printNoNewline(reverse("done"))
`)
	if len(parseErrs) > 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}
	env := environment.New("", environment.NewWriterStream(out), environment.NewWriterStream(out), nil)
	stdlib.Install(env)
	stdlib.LoadPrelude(env)
	findings := program.Analyze(env)
	if findings.IsErroneous() {
		t.Fatalf("unexpected analysis errors: %v", findings.Errors)
	}
	program.Interpret(env)
	if out.String() != "enod" {
		t.Errorf("expected stdout %q, got %q", "enod", out.String())
	}
}

func TestLoopBreakAndContinue(t *testing.T) {
	out := &captureStream{}
	program, parseErrs := syntax.Parse(`
i = 0
total = 0
while i < 10 {
	i = i + 1
	if i == 5 {
		break
	}
	if i == 2 {
		continue
	}
	total = total + i
}
printNoNewline(reverse("x"))
`)
	if len(parseErrs) > 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}
	env := environment.New("", environment.NewWriterStream(out), environment.NewWriterStream(out), nil)
	stdlib.Install(env)
	stdlib.LoadPrelude(env)
	findings := program.Analyze(env)
	if findings.IsErroneous() {
		t.Fatalf("unexpected analysis errors: %v", findings.Errors)
	}
	program.Interpret(env)
	if out.String() != "x" {
		t.Errorf("expected stdout %q, got %q", "x", out.String())
	}
}

func TestBreakOutsideLoopIsAnError(t *testing.T) {
	program, parseErrs := syntax.Parse(`break`)
	if len(parseErrs) > 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}
	env := environment.New("", nil, nil, nil)
	stdlib.Install(env)
	stdlib.LoadPrelude(env)
	findings := program.Analyze(env)
	if !findings.IsErroneous() {
		t.Fatal("expected an error for a top-level break")
	}
}

// captureStream is a minimal io.Writer (wrapped by NewWriterStream) that
// records everything written to it, for assertions on interpreted program
// output.
type captureStream struct {
	strings.Builder
}
