package runner_test

import (
	"strings"
	"testing"

	"github.com/rouge-lang/rouge/internal/runner"
)

func TestCheckOnCleanProgramReportsExitOK(t *testing.T) {
	result := runner.Check(`
x: Number = 1 + 2
printNoNewline(reverse("abc"))
`)
	if result.Code != runner.ExitOK {
		t.Fatalf("expected ExitOK, got %v (findings: %#v)", result.Code, result.Findings)
	}
}

func TestCheckOnAnalysisErrorReportsExitAnalysisFailed(t *testing.T) {
	result := runner.Check(`
x = 1
x = "oops"
`)
	if result.Code != runner.ExitAnalysisFailed {
		t.Fatalf("expected ExitAnalysisFailed, got %v", result.Code)
	}
	if result.Findings == nil || len(result.Findings.Errors) == 0 {
		t.Fatal("expected at least one analysis error")
	}
}

func TestCheckOnParseErrorReportsExitAnalysisFailed(t *testing.T) {
	result := runner.Check(`x = `)
	if result.Code != runner.ExitAnalysisFailed {
		t.Fatalf("expected ExitAnalysisFailed, got %v", result.Code)
	}
	if len(result.ParseErrors) == 0 {
		t.Fatal("expected at least one parse error")
	}
}

func TestRunOnCleanProgramWritesToStdout(t *testing.T) {
	var stdout, stderr strings.Builder
	result := runner.Run(`printNoNewline(reverse("abc"))`, &stdout, &stderr)
	if result.Code != runner.ExitOK {
		t.Fatalf("expected ExitOK, got %v", result.Code)
	}
	if stdout.String() != "cba" {
		t.Errorf("expected stdout %q, got %q", "cba", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("expected empty stderr, got %q", stderr.String())
	}
}

func TestRunOnUncaughtPanicReportsExitPanicked(t *testing.T) {
	var stdout, stderr strings.Builder
	result := runner.Run(`panic("boom")`, &stdout, &stderr)
	if result.Code != runner.ExitPanicked {
		t.Fatalf("expected ExitPanicked, got %v", result.Code)
	}
	if result.PanicReason != "boom" {
		t.Errorf("expected panic reason %q, got %q", "boom", result.PanicReason)
	}
	if !strings.Contains(stderr.String(), "boom") {
		t.Errorf("expected stderr to mention the panic reason, got %q", stderr.String())
	}
}

func TestRunOnAnalysisErrorNeverInterprets(t *testing.T) {
	var stdout, stderr strings.Builder
	result := runner.Run(`
x = 1
x = "oops"
printNoNewline("should not run")
`, &stdout, &stderr)
	if result.Code != runner.ExitAnalysisFailed {
		t.Fatalf("expected ExitAnalysisFailed, got %v", result.Code)
	}
	if stdout.String() != "" {
		t.Errorf("expected no output for a program that fails analysis, got %q", stdout.String())
	}
}
