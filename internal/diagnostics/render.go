package diagnostics

import (
	"fmt"
	"strings"
)

// Render formats a single Finding with a 3-line-padded source snippet and
// a caret range, in the spirit of the teacher's CompilerError.Format: a
// headline "ERROR: "/"WARNING: " line, the offending source line prefixed
// with a right-aligned line-number gutter, a caret line under the
// reported column range, and an optional highlight/tail message.
func Render(f Finding, source string) string {
	var sb strings.Builder

	sb.WriteString(f.Kind.String())
	sb.WriteString(": ")
	sb.WriteString(f.Message)
	sb.WriteString("\n")

	lines := strings.Split(source, "\n")
	line := f.Range.Begin.Line
	if line >= 1 && line <= len(lines) {
		gutter := fmt.Sprintf("%4d | ", line)
		sb.WriteString(gutter)
		sb.WriteString(lines[line-1])
		sb.WriteString("\n")

		width := 1
		if f.Range.End.Line == f.Range.Begin.Line && f.Range.End.Column > f.Range.Begin.Column {
			width = f.Range.End.Column - f.Range.Begin.Column
		}
		sb.WriteString(strings.Repeat(" ", len(gutter)+f.Range.Begin.Column-1))
		sb.WriteString(strings.Repeat("^", width))
		sb.WriteString("\n")
	}

	if f.Highlight != "" {
		sb.WriteString(f.Highlight)
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderAll renders every finding in f against source, separated by blank
// lines, in the order errors then warnings.
func RenderAll(f *Findings, source string) string {
	var sb strings.Builder
	for i, finding := range f.All() {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(Render(finding, source))
	}
	return sb.String()
}
