package diagnostic

import (
	"fmt"
	"strings"
)

// Entry represents a single diagnostic message.
type Entry struct {
	// Argument is the setup() keyword argument this relates to (if any).
	Argument string
	// Message is the human-readable description.
	Message string
	// Source is a rendering of the offending expression (if any).
	Source string
	// Line and Column locate the construct in the input, 1-based.
	// Zero when unknown.
	Line   int
	Column int
}

// String returns a formatted diagnostic string. Multi-line source renderings
// are indented with a "|  " gutter so they stay readable on a text channel.
func (e Entry) String() string {
	var b strings.Builder

	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}

	if e.Argument != "" {
		b.WriteString(e.Argument)
		b.WriteString(": ")
	}

	b.WriteString(e.Message)

	if e.Source != "" {
		for _, line := range strings.Split(e.Source, "\n") {
			b.WriteString("\n|  ")
			b.WriteString(line)
		}
	}

	return b.String()
}

// Sink accumulates diagnostics in encounter order.
//
// A conversion run owns exactly one Sink; it is not safe for concurrent use
// and does not need to be, since the pipeline is single-threaded.
type Sink struct {
	entries []Entry
}

// Add appends one entry.
func (s *Sink) Add(e Entry) {
	s.entries = append(s.entries, e)
}

// AddUnknownField records a keyword argument that has no declarative mapping.
func (s *Sink) AddUnknownField(arg string, line, column int) {
	s.Add(Entry{
		Argument: arg,
		Message:  "unknown field",
		Line:     line,
		Column:   column,
	})
}

// AddPositional records an argument passed positionally or by unpacking,
// which has no declarative form.
func (s *Sink) AddPositional(source string, line, column int) {
	s.Add(Entry{
		Message: "positional or unpacked argument has no declarative form",
		Source:  source,
		Line:    line,
		Column:  column,
	})
}

// AddUnresolved records a keyword argument whose value could not be resolved
// without executing code.
func (s *Sink) AddUnresolved(arg, reason, source string, line, column int) {
	s.Add(Entry{
		Argument: arg,
		Message:  "non-literal value (" + reason + ")",
		Source:   source,
		Line:     line,
		Column:   column,
	})
}

// AddShapeMismatch records a resolved value that does not fit its field's
// rendering rule.
func (s *Sink) AddShapeMismatch(arg, want, got string, line, column int) {
	s.Add(Entry{
		Argument: arg,
		Message:  fmt.Sprintf("expected %s, got %s", want, got),
		Line:     line,
		Column:   column,
	})
}

// Len returns the number of accumulated entries.
func (s *Sink) Len() int {
	return len(s.entries)
}

// Drain returns all accumulated entries in encounter order and empties the
// sink.
func (s *Sink) Drain() []Entry {
	out := s.entries
	s.entries = nil

	return out
}
