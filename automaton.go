package dfa

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Automaton Represents a deterministic finite automaton over string-labelled states and symbols.
// States and symbols are stored in arenas and addressed by dense indices; labels are the external
// identity. Every (state, symbol) pair has exactly one slot in the transition table, holding the
// target state index or -1 when no transition is defined, so determinism holds by construction.
// An Automaton is created by a Builder and never mutated afterwards.
type Automaton struct {
	// State labels, indexed by state number.
	states []string
	index  map[string]int

	// States that were named in the declared state set. Other states were introduced implicitly,
	// either as the start label or as the source or target of a transition.
	declared *bitset.BitSet

	isAccept *bitset.BitSet

	// Symbol labels, indexed by symbol number. The alphabet is the ordered subset of declared
	// symbols; the remaining ones only appeared on transition lines.
	symbols     []string
	symbolIndex map[string]int
	alphabet    []int

	// One row per state, one slot per symbol. Rows may be shorter than len(symbols); missing
	// slots are undefined.
	transitions [][]int

	// Start state, or -1 if the automaton has none.
	start int
}

func newAutomaton(numStates, numSymbols int) *Automaton {
	return &Automaton{
		states:      make([]string, 0, numStates),
		index:       make(map[string]int, numStates),
		declared:    bitset.New(uint(numStates)),
		isAccept:    bitset.New(uint(numStates)),
		symbols:     make([]string, 0, numSymbols),
		symbolIndex: make(map[string]int, numSymbols),
		alphabet:    make([]int, 0, numSymbols),
		transitions: make([][]int, 0, numStates),
		start:       -1,
	}
}

// GetNumStates How many states this automaton has.
func (a *Automaton) GetNumStates() int {
	return len(a.states)
}

// GetNumTransitions How many defined transitions this automaton has, including those on symbols
// outside the alphabet.
func (a *Automaton) GetNumTransitions() int {
	count := 0
	for _, row := range a.transitions {
		for _, dest := range row {
			if dest != -1 {
				count++
			}
		}
	}
	return count
}

// State Returns the label of the given state.
func (a *Automaton) State(state int) string {
	return a.states[state]
}

// StateIndex Returns the index of the state with the given label.
func (a *Automaton) StateIndex(label string) (int, bool) {
	i, ok := a.index[label]
	return i, ok
}

// States Returns all state labels in index order.
func (a *Automaton) States() []string {
	return clone(a.states)
}

// HasState Returns true if label names a state of this automaton, declared or implicit.
func (a *Automaton) HasState(label string) bool {
	_, ok := a.index[label]
	return ok
}

// IsDeclared Returns true if label names a state that was part of the declared state set.
func (a *Automaton) IsDeclared(label string) bool {
	i, ok := a.index[label]
	return ok && a.declared.Test(uint(i))
}

// IsAccept Returns true if this state is an accept state.
func (a *Automaton) IsAccept(state int) bool {
	return a.isAccept.Test(uint(state))
}

// IsAcceptLabel Returns true if label names an accept state.
func (a *Automaton) IsAcceptLabel(label string) bool {
	i, ok := a.index[label]
	return ok && a.IsAccept(i)
}

// AcceptStates Returns the labels of all accept states in index order.
func (a *Automaton) AcceptStates() []string {
	accept := make([]string, 0, a.isAccept.Count())
	for i, ok := a.isAccept.NextSet(0); ok && int(i) < len(a.states); i, ok = a.isAccept.NextSet(i + 1) {
		accept = append(accept, a.states[i])
	}
	return accept
}

// Start Returns the start state, -1 if there is none.
func (a *Automaton) Start() int {
	return a.start
}

// StartLabel Returns the label of the start state.
func (a *Automaton) StartLabel() (string, bool) {
	if a.start == -1 {
		return "", false
	}
	return a.states[a.start], true
}

// Alphabet Returns the declared input symbols in declaration order.
func (a *Automaton) Alphabet() []string {
	alphabet := make([]string, len(a.alphabet))
	for i, sym := range a.alphabet {
		alphabet[i] = a.symbols[sym]
	}
	return alphabet
}

// SymbolIndex Returns the index of the symbol with the given label.
func (a *Automaton) SymbolIndex(label string) (int, bool) {
	i, ok := a.symbolIndex[label]
	return i, ok
}

// Step Performs lookup in transitions.
// Returns: destination state, -1 if no matching outgoing transition
func (a *Automaton) Step(state, symbol int) int {
	row := a.transitions[state]
	if symbol < 0 || symbol >= len(row) {
		return -1
	}
	return row[symbol]
}

// Target Looks up the transition for a (state, symbol) pair by label.
func (a *Automaton) Target(state, symbol string) (string, bool) {
	s, ok := a.index[state]
	if !ok {
		return "", false
	}
	sym, ok := a.symbolIndex[symbol]
	if !ok {
		return "", false
	}
	dest := a.Step(s, sym)
	if dest == -1 {
		return "", false
	}
	return a.states[dest], true
}

// Edge groups every symbol that leads from one state to the same target.
type Edge struct {
	Source  string
	Target  string
	Symbols []string
}

// Edges Returns the transitions on alphabet symbols merged per (source, target) pair. Edges are
// ordered by source index, then by the first symbol that produced them; symbols keep alphabet order.
func (a *Automaton) Edges() []Edge {
	edges := make([]Edge, 0, len(a.states))
	for s := range a.states {
		slot := make(map[int]int)
		for _, sym := range a.alphabet {
			dest := a.Step(s, sym)
			if dest == -1 {
				continue
			}
			i, ok := slot[dest]
			if !ok {
				i = len(edges)
				slot[dest] = i
				edges = append(edges, Edge{Source: a.states[s], Target: a.states[dest]})
			}
			edges[i].Symbols = append(edges[i].Symbols, a.symbols[sym])
		}
	}
	return edges
}

func (a *Automaton) String() string {
	var sb strings.Builder
	start, _ := a.StartLabel()
	fmt.Fprintf(&sb, "states=%v alphabet=%v start=%q accept=%v", a.states, a.Alphabet(), start, a.AcceptStates())
	for s := range a.states {
		for _, sym := range a.alphabet {
			if dest := a.Step(s, sym); dest != -1 {
				fmt.Fprintf(&sb, " %s,%s=%s", a.states[s], a.symbols[sym], a.states[dest])
			}
		}
	}
	return sb.String()
}

type automatonJSON struct {
	States      []string                     `json:"states"`
	Alphabet    []string                     `json:"alphabet"`
	Start       string                       `json:"start,omitempty"`
	Accept      []string                     `json:"accept"`
	Transitions map[string]map[string]string `json:"transitions"`
}

// MarshalJSON encodes the automaton with label-keyed transitions on alphabet symbols.
func (a *Automaton) MarshalJSON() ([]byte, error) {
	start, _ := a.StartLabel()
	out := automatonJSON{
		States:      a.States(),
		Alphabet:    a.Alphabet(),
		Start:       start,
		Accept:      a.AcceptStates(),
		Transitions: make(map[string]map[string]string, len(a.states)),
	}
	for s, label := range a.states {
		row := make(map[string]string)
		for _, sym := range a.alphabet {
			if dest := a.Step(s, sym); dest != -1 {
				row[a.symbols[sym]] = a.states[dest]
			}
		}
		out.Transitions[label] = row
	}
	return json.Marshal(out)
}
