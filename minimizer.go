package dfa

import (
	"log/slog"

	"github.com/google/uuid"
)

// Minimization holds the stages of one minimization.
type Minimization struct {
	// Reduced is the input restricted to its reachable states.
	Reduced *Automaton
	// Partition is the final partition of Reduced.
	Partition *Partition
	// Minimized is the quotient of Reduced by Partition.
	Minimized *Automaton
}

// Minimize
// Removes unreachable states from a, refines the remaining states into equivalence classes and
// builds the quotient automaton. a itself is left untouched.
func Minimize(a *Automaton, opts ...RefineOption) *Minimization {
	reduced := RemoveUnreachable(a)
	p := Refine(reduced, opts...)
	return &Minimization{
		Reduced:   reduced,
		Partition: p,
		Minimized: Quotient(reduced, p),
	}
}

// BlockSummary describes one block of the final partition.
type BlockSummary struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Members []string `json:"members"`
}

// Report is everything a presentation layer needs about one run.
type Report struct {
	RunID string `json:"run_id"`

	// Original is the input automaton restricted to its reachable states.
	Original  *Automaton `json:"original"`
	Minimized *Automaton `json:"minimized"`
	Partition *Partition `json:"-"`

	// Blocks lists the final partition in block order; Blocks[i].ID names state i of Minimized.
	Blocks []BlockSummary `json:"blocks"`

	ReachableStates int `json:"reachable_states"`
	MinimizedStates int `json:"minimized_states"`

	// StartBlock is empty when the input has no start state.
	StartBlock   string   `json:"start_block,omitempty"`
	AcceptBlocks []string `json:"accept_blocks"`

	// Rounds counts the refinement rounds that split at least one block.
	Rounds        int  `json:"rounds"`
	EmptyLanguage bool `json:"empty_language"`

	Invalid []*InvalidLine `json:"invalid_lines,omitempty"`
}

// StartBlockLabel Returns the display label of the start block.
func (r *Report) StartBlockLabel() string {
	for _, b := range r.Blocks {
		if b.ID == r.StartBlock {
			return b.Label
		}
	}
	return ""
}

func newReport(runID string, m *Minimization, invalid []*InvalidLine) *Report {
	r := &Report{
		RunID:           runID,
		Original:        m.Reduced,
		Minimized:       m.Minimized,
		Partition:       m.Partition,
		Blocks:          make([]BlockSummary, m.Partition.Len()),
		ReachableStates: m.Reduced.GetNumStates(),
		MinimizedStates: m.Minimized.GetNumStates(),
		AcceptBlocks:    m.Minimized.AcceptStates(),
		Rounds:          m.Partition.Round(),
		EmptyLanguage:   IsEmptyAutomaton(m.Minimized),
		Invalid:         invalid,
	}
	for i, blk := range m.Partition.blocks {
		r.Blocks[i] = BlockSummary{
			ID:      BlockName(i),
			Label:   blk.Label(m.Reduced),
			Members: blk.labels(m.Reduced),
		}
	}
	if start, ok := m.Minimized.StartLabel(); ok {
		r.StartBlock = start
	}
	return r
}

// Minimizer runs the parse, reduce, refine and quotient pipeline and reports on it. A Minimizer
// holds configuration only and may be reused.
type Minimizer struct {
	logger       *slog.Logger
	metrics      *Metrics
	parseOptions []ParseOption
	newRunID     func() string
}

// MinimizerOption configures a Minimizer.
type MinimizerOption func(*Minimizer)

// WithLogger Sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) MinimizerOption {
	return func(m *Minimizer) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithMetrics Sets the collectors updated after every run.
func WithMetrics(metrics *Metrics) MinimizerOption {
	return func(m *Minimizer) {
		m.metrics = metrics
	}
}

// WithParseOptions Sets the options passed to Parse.
func WithParseOptions(opts ...ParseOption) MinimizerOption {
	return func(m *Minimizer) {
		m.parseOptions = append(m.parseOptions, opts...)
	}
}

// NewMinimizer Returns a Minimizer configured by opts.
func NewMinimizer(opts ...MinimizerOption) *Minimizer {
	m := &Minimizer{
		logger:   slog.New(slog.DiscardHandler),
		newRunID: uuid.NewString,
	}
	for _, fn := range opts {
		fn(m)
	}
	return m
}

// Process Parses t and minimizes the resulting automaton. Malformed transition lines are logged,
// counted and returned in the report; the only error is ErrNilTable.
func (m *Minimizer) Process(t *Table) (*Report, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	runID := m.newRunID()
	logger := m.logger.With(slog.String("run_id", runID))

	a, invalid := Parse(t, m.parseOptions...)
	for _, line := range invalid {
		logger.Warn("ignoring invalid transition line",
			slog.Int("line", line.Line),
			slog.String("text", line.Text),
			slog.String("reason", line.Reason))
	}
	if label, ok := a.StartLabel(); ok && !a.IsDeclared(label) {
		logger.Warn("start state is not declared", slog.String("start", label))
	}

	r := newReport(runID, m.minimize(logger, a), invalid)
	if m.metrics != nil {
		m.metrics.observe(r, a.GetNumStates())
	}
	logger.Info("minimized automaton",
		slog.Int("states", a.GetNumStates()),
		slog.Int("reachable", r.ReachableStates),
		slog.Int("minimized", r.MinimizedStates),
		slog.Int("rounds", r.Rounds),
		slog.Int("invalid_lines", len(invalid)))
	return r, nil
}

// Minimize Minimizes a, logging every refinement round at debug level.
func (m *Minimizer) Minimize(a *Automaton) *Minimization {
	return m.minimize(m.logger, a)
}

func (m *Minimizer) minimize(logger *slog.Logger, a *Automaton) *Minimization {
	return Minimize(a, WithRoundHook(func(p *Partition) {
		logger.Debug("refinement round",
			slog.Int("round", p.Round()),
			slog.Int("blocks", p.Len()))
	}))
}
