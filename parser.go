package dfa

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedTransition is wrapped by every InvalidLine.
	ErrMalformedTransition = errors.New("malformed transition line")
	// ErrNilTable is returned when no table is supplied.
	ErrNilTable = errors.New("table is nil")
	// ErrEmptyDocument is returned when a YAML table document has no content.
	ErrEmptyDocument = errors.New("empty document")
)

// InvalidLine describes one transition line that was skipped.
type InvalidLine struct {
	// Line is the 1-based line number within the transitions block.
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

func (e *InvalidLine) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

func (e *InvalidLine) Unwrap() error {
	return ErrMalformedTransition
}

type parseOption struct {
	delimiter string
}

// ParseOption configures Parse.
type ParseOption func(*parseOption)

// WithDelimiter Sets the separator of the states, alphabet and accept lists. Transition lines
// always use `,` and `=`.
func WithDelimiter(delimiter string) ParseOption {
	return func(o *parseOption) {
		if delimiter != "" {
			o.delimiter = delimiter
		}
	}
}

func newParseOption(opts ...ParseOption) *parseOption {
	o := &parseOption{delimiter: ","}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// Parse Builds an Automaton from t. Lines of the transitions block that do not match
// `state,symbol=target` are skipped and returned in input order, one entry per line; the rest of
// the table is still used. Declared states come first, in declaration order, followed by states
// that only appear as the start label, on transition lines, or in the accept list.
func Parse(t *Table, opts ...ParseOption) (*Automaton, []*InvalidLine) {
	o := newParseOption(opts...)
	states := splitList(t.States, o.delimiter)
	alphabet := splitList(t.Alphabet, o.delimiter)

	b := NewBuilderV1(len(states), len(alphabet))
	for _, s := range states {
		b.CreateState(s)
	}
	for _, sym := range alphabet {
		b.AddSymbol(sym)
	}
	b.SetStart(strings.TrimSpace(t.Start))

	var invalid []*InvalidLine
	for n, line := range strings.Split(t.Transitions, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		source, symbol, dest, reason := parseTransition(line)
		if reason != "" {
			invalid = append(invalid, &InvalidLine{Line: n + 1, Text: line, Reason: reason})
			continue
		}
		b.AddTransition(source, symbol, dest)
	}

	for _, s := range splitList(t.Accept, o.delimiter) {
		b.SetAccept(s, true)
	}
	return b.Finish(), invalid
}

// parseTransition splits `state,symbol=target`. A non-empty reason means the line is invalid.
func parseTransition(line string) (source, symbol, dest, reason string) {
	switch strings.Count(line, "=") {
	case 0:
		return "", "", "", "missing '='"
	case 1:
	default:
		return "", "", "", "more than one '='"
	}
	left, right, _ := strings.Cut(line, "=")

	switch strings.Count(left, ",") {
	case 0:
		return "", "", "", "missing ',' between state and symbol"
	case 1:
	default:
		return "", "", "", "more than one ',' before '='"
	}
	source, symbol, _ = strings.Cut(left, ",")
	source = strings.TrimSpace(source)
	symbol = strings.TrimSpace(symbol)
	dest = strings.TrimSpace(right)

	switch {
	case source == "":
		return "", "", "", "empty state"
	case symbol == "":
		return "", "", "", "empty symbol"
	case dest == "":
		return "", "", "", "empty target"
	}
	return source, symbol, dest, ""
}

// splitList splits a delimiter-separated list, trims every token and drops empty ones.
func splitList(s, delimiter string) []string {
	fields := strings.Split(s, delimiter)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
