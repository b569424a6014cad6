// Package diagnostics accumulates and renders the analyzer's errors and
// warnings. It plays the role the teacher repo's internal/errors package
// plays for compiler errors, generalized to a bag of findings with a
// kind tag (error|warning) as spec.md's Findings component describes.
package diagnostics

import "github.com/rouge-lang/rouge/internal/token"

// Kind distinguishes an error finding from a warning finding.
type Kind int

const (
	KindError Kind = iota
	KindWarning
)

func (k Kind) String() string {
	if k == KindWarning {
		return "WARNING"
	}
	return "ERROR"
}

// Finding is a single diagnostic: a headline message, an optional
// highlight/tail message, a kind, and the source range it refers to.
type Finding struct {
	Kind      Kind
	Message   string
	Highlight string // optional trailing message; empty when unused
	Range     token.Range
}

// Findings is an ordered bag of errors and warnings produced by analysis.
type Findings struct {
	Errors   []Finding
	Warnings []Finding
}

// AddError appends an error-kind finding.
func (f *Findings) AddError(msg string, rng token.Range) {
	f.Errors = append(f.Errors, Finding{Kind: KindError, Message: msg, Range: rng})
}

// AddErrorWithHighlight appends an error-kind finding carrying a tail message.
func (f *Findings) AddErrorWithHighlight(msg, highlight string, rng token.Range) {
	f.Errors = append(f.Errors, Finding{Kind: KindError, Message: msg, Highlight: highlight, Range: rng})
}

// AddWarning appends a warning-kind finding.
func (f *Findings) AddWarning(msg string, rng token.Range) {
	f.Warnings = append(f.Warnings, Finding{Kind: KindWarning, Message: msg, Range: rng})
}

// IsErroneous reports whether any error-kind finding has been recorded.
func (f *Findings) IsErroneous() bool {
	return f != nil && len(f.Errors) > 0
}

// Merge concatenates the errors and warnings of all given Findings
// (in order) into a freshly allocated Findings.
func Merge(all ...*Findings) *Findings {
	out := &Findings{}
	for _, f := range all {
		if f == nil {
			continue
		}
		out.Errors = append(out.Errors, f.Errors...)
		out.Warnings = append(out.Warnings, f.Warnings...)
	}
	return out
}

// All returns every finding (errors first, then warnings) in recorded order.
func (f *Findings) All() []Finding {
	if f == nil {
		return nil
	}
	out := make([]Finding, 0, len(f.Errors)+len(f.Warnings))
	out = append(out, f.Errors...)
	out = append(out, f.Warnings...)
	return out
}
