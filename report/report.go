//go:build !solution

// Package report runs the pattern counter and shows the repeated patterns.
package report

import (
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"gitlab.com/slon/patternfinder/freqtable"
	"gitlab.com/slon/patternfinder/patternfinder"
)

// NoRepeatsLine is displayed when every pattern occurs only once.
const NoRepeatsLine = "There are no repeated patterns"

// Format selects how repeated patterns are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// Order selects the order of repeated patterns in the report.
type Order string

const (
	// OrderFirst lists patterns in the order they first appear in the input.
	OrderFirst Order = "first"
	// OrderCount lists the most frequent patterns first.
	OrderCount Order = "count"
)

// Reporter counts patterns and displays the repeated ones.
// The zero value reports text lines in first-occurrence order.
type Reporter struct {
	Format Format
	Order  Order
	Logger *zap.Logger
	Clock  clockwork.Clock
}

// ProcessInput displays the repeated patterns of input with the default Reporter.
func ProcessInput(input string, patternLength int, sink Sink) error {
	var r Reporter
	return r.Process(input, patternLength, sink)
}

// Process counts patterns of patternLength in input and sends the repeated
// ones to sink, at least one line on success. Errors of the counter are
// returned as is and nothing is displayed.
func (r *Reporter) Process(input string, patternLength int, sink Sink) error {
	if err := r.validate(); err != nil {
		return err
	}

	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := r.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	start := clock.Now()
	patterns, err := patternfinder.CountPatterns(input, patternLength)
	if err != nil {
		logger.Debug("input rejected", zap.Error(err))
		return err
	}

	repeated := patterns.Filter(isRepeated)
	if r.Order == OrderCount {
		repeated = freqtable.Rank(repeated)
	}

	logger.Debug("patterns counted",
		zap.Int("pattern_length", patternLength),
		zap.Int("windows", patterns.Total()),
		zap.Int("distinct", patterns.Len()),
		zap.Int("repeated", len(repeated)),
		zap.Duration("elapsed", clock.Since(start)),
	)

	if len(repeated) == 0 {
		sink.Display(NoRepeatsLine)
		return nil
	}

	switch r.Format {
	case FormatYAML:
		return displayYAML(repeated, sink)
	default:
		displayText(repeated, sink)
		return nil
	}
}

func (r *Reporter) validate() error {
	switch r.Format {
	case "", FormatText, FormatYAML:
	default:
		return fmt.Errorf("unknown report format %q", r.Format)
	}
	switch r.Order {
	case "", OrderFirst, OrderCount:
	default:
		return fmt.Errorf("unknown report order %q", r.Order)
	}
	return nil
}

func isRepeated(e freqtable.Entry[string]) bool {
	return e.Count > 1
}

// FormatLine formats a repeated pattern the way the text report shows it.
func FormatLine(pattern string, quantity int) string {
	return fmt.Sprintf("Pattern: %s, quantity: %d", pattern, quantity)
}

func displayText(repeated []freqtable.Entry[string], sink Sink) {
	for _, e := range repeated {
		sink.Display(FormatLine(e.Key, e.Count))
	}
}

// displayYAML renders the patterns as an ordered mapping, one line per sink call.
func displayYAML(repeated []freqtable.Entry[string], sink Sink) error {
	doc := make(yaml.MapSlice, 0, len(repeated))
	for _, e := range repeated {
		doc = append(doc, yaml.MapItem{Key: e.Key, Value: e.Count})
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to render YAML: %w", err)
	}

	for _, line := range strings.Split(strings.TrimSuffix(string(out), "\n"), "\n") {
		sink.Display(line)
	}
	return nil
}
