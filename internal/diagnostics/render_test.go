package diagnostics_test

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/rouge-lang/rouge/internal/diagnostics"
	"github.com/rouge-lang/rouge/internal/token"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func TestRenderSingleErrorWithCaret(t *testing.T) {
	source := "x = 1\nx = \"oops\"\n"
	f := diagnostics.Finding{
		Kind:    diagnostics.KindError,
		Message: "cannot reassign 'x' of type Number with a value of type String",
		Range: token.Range{
			Begin: token.Position{Line: 2, Column: 5, Offset: 10},
			End:   token.Position{Line: 2, Column: 11, Offset: 16},
		},
	}
	snaps.MatchSnapshot(t, "reassignment_error", diagnostics.Render(f, source))
}

func TestRenderWarningWithHighlight(t *testing.T) {
	source := "f = function() -> Number {\n\treturn 1\n\tx = 2\n}\n"
	f := diagnostics.Finding{
		Kind:      diagnostics.KindWarning,
		Message:   "these statements are never going to be run",
		Highlight: "unreachable after the preceding return",
		Range: token.Range{
			Begin: token.Position{Line: 3, Column: 2, Offset: 0},
			End:   token.Position{Line: 3, Column: 7, Offset: 0},
		},
	}
	snaps.MatchSnapshot(t, "unreachable_warning", diagnostics.Render(f, source))
}

func TestRenderAllOrdersErrorsBeforeWarnings(t *testing.T) {
	source := "x = 1\nx: Number = 2\n"
	findings := &diagnostics.Findings{}
	findings.AddError("cannot annotate a reassignment of 'x'", token.Range{
		Begin: token.Position{Line: 2, Column: 1, Offset: 6},
		End:   token.Position{Line: 2, Column: 2, Offset: 7},
	})
	findings.AddWarning("annotation is redundant here", token.Range{
		Begin: token.Position{Line: 2, Column: 4, Offset: 9},
		End:   token.Position{Line: 2, Column: 10, Offset: 15},
	})
	snaps.MatchSnapshot(t, "error_then_warning", diagnostics.RenderAll(findings, source))
}
