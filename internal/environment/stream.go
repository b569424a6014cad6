package environment

import (
	"fmt"
	"io"
)

// WriterStream adapts an io.Writer to values.Stream, the shape the
// teacher's CLI commands write plain output through (cobra's
// OutOrStdout()/OutOrStderr()).
type WriterStream struct {
	W io.Writer
}

// NewWriterStream wraps w as a values.Stream.
func NewWriterStream(w io.Writer) *WriterStream { return &WriterStream{W: w} }

func (s *WriterStream) WriteLine(line string) {
	fmt.Fprintln(s.W, line)
}

func (s *WriterStream) WriteChunk(chunk string) {
	fmt.Fprint(s.W, chunk)
}
