package dfa

// Builder Records states, symbols and transitions and produces an Automaton on Finish. A Builder
// may only be finished once; the resulting Automaton owns the recorded data.
//
// Labels used as transition endpoints or as the start state are created on demand as implicit
// states. A later CreateState call for the same label promotes it to a declared state without
// changing its index. Symbols behave the same way with respect to the alphabet.
type Builder struct {
	a *Automaton
}

// NewBuilder Returns an empty builder.
func NewBuilder() *Builder {
	return NewBuilderV1(2, 2)
}

// NewBuilderV1 Returns an empty builder with room for the given number of states and symbols.
func NewBuilderV1(numStates, numSymbols int) *Builder {
	return &Builder{a: newAutomaton(numStates, numSymbols)}
}

// CreateState Declares a state and returns its index. Declaring an existing label is a no-op apart
// from marking it declared.
func (b *Builder) CreateState(label string) int {
	state := b.state(label)
	b.a.declared.Set(uint(state))
	return state
}

func (b *Builder) state(label string) int {
	if state, ok := b.a.index[label]; ok {
		return state
	}
	state := len(b.a.states)
	b.a.states = append(b.a.states, label)
	b.a.index[label] = state
	b.a.transitions = append(b.a.transitions, nil)
	return state
}

// AddSymbol Appends a symbol to the alphabet and returns its index. Adding a symbol twice keeps
// its first position.
func (b *Builder) AddSymbol(label string) int {
	sym, ok := b.a.symbolIndex[label]
	if !ok {
		sym = b.symbol(label)
	}
	for _, s := range b.a.alphabet {
		if s == sym {
			return sym
		}
	}
	b.a.alphabet = append(b.a.alphabet, sym)
	return sym
}

func (b *Builder) symbol(label string) int {
	if sym, ok := b.a.symbolIndex[label]; ok {
		return sym
	}
	sym := len(b.a.symbols)
	b.a.symbols = append(b.a.symbols, label)
	b.a.symbolIndex[label] = sym
	return sym
}

// SetAccept Set or clear this state as an accept state, creating it implicitly if needed.
func (b *Builder) SetAccept(label string, accept bool) {
	b.a.isAccept.SetTo(uint(b.state(label)), accept)
}

// SetStart Sets the start state, creating it implicitly if needed. An empty label clears it.
func (b *Builder) SetStart(label string) {
	if label == "" {
		b.a.start = -1
		return
	}
	b.a.start = b.state(label)
}

// AddTransition Sets the target for (source, symbol). A previous target for the same pair is
// replaced.
func (b *Builder) AddTransition(source, symbol, dest string) {
	s := b.state(source)
	d := b.state(dest)
	b.setTransition(s, b.symbol(symbol), d)
}

func (b *Builder) setTransition(source, symbol, dest int) {
	b.a.transitions[source] = grow(b.a.transitions[source], symbol+1, -1)
	b.a.transitions[source][symbol] = dest
}

// GetNumStates How many states have been created so far.
func (b *Builder) GetNumStates() int {
	return len(b.a.states)
}

// Finish Returns the built automaton. The builder must not be used afterwards.
func (b *Builder) Finish() *Automaton {
	a := b.a
	b.a = nil
	return a
}
