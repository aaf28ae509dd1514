//go:build !solution

package report

import (
	"fmt"
	"io"
)

//go:generate mockgen -source=sink.go -destination=mock_sink_test.go -package=report

// Sink displays one line of the report to the user.
type Sink interface {
	Display(line string)
}

// SinkFunc adapts an ordinary function to Sink.
type SinkFunc func(line string)

func (f SinkFunc) Display(line string) {
	f(line)
}

// WriterSink prints every line to W. After the first failed write the rest
// of the lines are dropped and the error is available through Err.
type WriterSink struct {
	w   io.Writer
	err error
}

// NewWriterSink returns a sink printing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Display prints line followed by a newline.
func (s *WriterSink) Display(line string) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintln(s.w, line)
}

// Err returns the first write error, if any.
func (s *WriterSink) Err() error {
	return s.err
}

// Lines collects displayed lines in memory.
type Lines []string

func (l *Lines) Display(line string) {
	*l = append(*l, line)
}
